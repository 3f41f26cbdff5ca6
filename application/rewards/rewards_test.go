package rewards_test

import (
	"context"
	"errors"
	"testing"

	apprewards "github.com/rewardslab/rewards-backend/application/rewards"
	"github.com/rewardslab/rewards-backend/cmd/config"
	paramsmocks "github.com/rewardslab/rewards-backend/mocks/repository/params"
	usermocks "github.com/rewardslab/rewards-backend/mocks/repository/user"
	"github.com/rewardslab/rewards-backend/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Rewards: config.RewardsConfig{
			PointsParam: "/app/rewards/points-per-user",
			CardParam:   "/app/rewards/credit-card-secret",
		},
	}
}

func TestRewardsApp_AddPoints(t *testing.T) {
	tests := []struct {
		name       string
		paramValue string
		paramErr   error
		wantPoints int
		wantErr    bool
	}{
		{name: "success: numeric parameter", paramValue: "150", wantPoints: 150},
		{name: "success: parameter with whitespace", paramValue: " 42\n", wantPoints: 42},
		{name: "success: malformed parameter defaults to zero", paramValue: "lots", wantPoints: 0},
		{name: "error: parameter fetch failure", paramErr: errors.New("parameter not found"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := paramsmocks.NewParamsRepository(t)
			params.
				On("Get", mock.Anything, "/app/rewards/points-per-user", false).
				Return(tt.paramValue, tt.paramErr).
				Once()

			app := apprewards.NewRewardsApp(testConfig(), params, usermocks.NewUserRepository(t))
			got, err := app.AddPoints(context.Background(), &model.RewardsTask{UETR: "uetr-1"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			if assert.NotNil(t, got) && assert.NotNil(t, got.PointsAdded) {
				assert.Equal(t, "uetr-1", got.UETR)
				assert.Equal(t, tt.wantPoints, *got.PointsAdded)
			}
		})
	}
}

func TestRewardsApp_AddCard(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		secretErr error
		wantLast4 string
		wantErr   bool
	}{
		{name: "success: long secret reduced to last four", secret: "4111111111111234", wantLast4: "1234"},
		{name: "success: four character secret kept as is", secret: "5678", wantLast4: "5678"},
		{name: "success: empty secret falls back", secret: "", wantLast4: "0000"},
		{name: "error: decryption failure", secretErr: errors.New("access denied"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := paramsmocks.NewParamsRepository(t)
			params.
				On("Get", mock.Anything, "/app/rewards/credit-card-secret", true).
				Return(tt.secret, tt.secretErr).
				Once()

			app := apprewards.NewRewardsApp(testConfig(), params, usermocks.NewUserRepository(t))
			got, err := app.AddCard(context.Background(), &model.RewardsTask{UETR: "uetr-1"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.wantLast4, got.CardLast4)
			}
		})
	}
}

func TestRewardsApp_UpdateUser(t *testing.T) {
	points := 150

	t.Run("success: rewards written to the user record", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("UpdateRewards", mock.Anything, "uetr-1", 150, "1234").
			Return(nil).
			Once()

		app := apprewards.NewRewardsApp(testConfig(), paramsmocks.NewParamsRepository(t), users)
		got, err := app.UpdateUser(context.Background(), &model.RewardsTask{
			UETR:        "uetr-1",
			PointsAdded: &points,
			CardLast4:   "1234",
		})

		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.True(t, got.Updated)
			assert.Equal(t, "uetr-1", got.UETR)
		}
	})

	t.Run("success: missing points default to zero", func(t *testing.T) {
		users := usermocks.NewUserRepository(t)
		users.
			On("UpdateRewards", mock.Anything, "uetr-1", 0, "").
			Return(nil).
			Once()

		app := apprewards.NewRewardsApp(testConfig(), paramsmocks.NewParamsRepository(t), users)
		got, err := app.UpdateUser(context.Background(), &model.RewardsTask{UETR: "uetr-1"})

		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.True(t, got.Updated)
		}
	})

	t.Run("error: update failure surfaces raw for workflow retry", func(t *testing.T) {
		updateErr := errors.New("conditional check failed")
		users := usermocks.NewUserRepository(t)
		users.
			On("UpdateRewards", mock.Anything, "uetr-1", 0, "").
			Return(updateErr).
			Once()

		app := apprewards.NewRewardsApp(testConfig(), paramsmocks.NewParamsRepository(t), users)
		got, err := app.UpdateUser(context.Background(), &model.RewardsTask{UETR: "uetr-1"})

		assert.Equal(t, updateErr, err)
		assert.Nil(t, got)
	})
}
