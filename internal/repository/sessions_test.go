package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityar2309/ttsai-progress/internal/models"
	mock_repository "github.com/adityar2309/ttsai-progress/internal/repository/mock"
)

func newSessionsMock(ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *SessionsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &SessionsR{db: db}
}

func TestSessionsR_AddSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionsR := newSessionsMock(ctrl, tt.f)

			err := sessionsR.AddSession(context.Background(), models.PracticeSession{UserID: "user-1"})
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSessionsR_LatestConversation(t *testing.T) {
	t.Parallel()

	t.Run("no conversations maps to not found", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sessionsR := newSessionsMock(ctrl, func(mqi *mock_repository.MockQueryI) {
			mqi.EXPECT().
				GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(sql.ErrNoRows)
		})

		_, err := sessionsR.LatestConversation(context.Background(), "user-1")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run("returns latest session", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sessionsR := newSessionsMock(ctrl, func(mqi *mock_repository.MockQueryI) {
			mqi.EXPECT().
				GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
					session := dest.(*models.PracticeSession)
					session.UserID = "user-1"
					session.Kind = models.SessionKindConversation
					session.Payload = models.SessionPayload{Topic: "travel plans"}
					return nil
				})
		})

		session, err := sessionsR.LatestConversation(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "travel plans", session.Topic())
	})
}
