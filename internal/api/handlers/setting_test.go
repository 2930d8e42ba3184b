package handlers_test

import (
	"net/http"
	"testing"

	"github.com/dom/debt-ledger/internal/testutil"
	"github.com/stretchr/testify/assert"
)

type settingData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Setting  struct {
		Currency     string `json:"currency"`
		ReminderTime int    `json:"reminder_time"`
	} `json:"setting"`
}

func TestSettingHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("get defaults", func(t *testing.T) {
		resp := testutil.DoJSON(t, http.MethodGet, ts.URL("/api/settings"), nil, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var data settingData
		testutil.DecodeEnvelope(t, resp, &data)
		assert.Equal(t, user.ID.String(), data.ID)
		assert.Equal(t, user.Username, data.Username)
		assert.Equal(t, "UZS", data.Setting.Currency)
		assert.Equal(t, 1, data.Setting.ReminderTime)
	})

	tests := []struct {
		name           string
		request        map[string]interface{}
		expectedStatus int
		wantCurrency   string
		wantDays       int
	}{
		{
			name:           "update both",
			request:        map[string]interface{}{"currency": "usd", "reminder_time": 3},
			expectedStatus: http.StatusOK,
			wantCurrency:   "USD",
			wantDays:       3,
		},
		{
			name:           "update currency only",
			request:        map[string]interface{}{"currency": "EUR"},
			expectedStatus: http.StatusOK,
			wantCurrency:   "EUR",
			wantDays:       3,
		},
		{
			name:           "invalid currency",
			request:        map[string]interface{}{"currency": "GBP"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative reminder",
			request:        map[string]interface{}{"reminder_time": -2},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "reminder beyond ten years",
			request:        map[string]interface{}{"reminder_time": 3651},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "reminder that overflows timestamps",
			request:        map[string]interface{}{"reminder_time": int64(1) << 40},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "longest reminder",
			request:        map[string]interface{}{"reminder_time": 3650},
			expectedStatus: http.StatusOK,
			wantCurrency:   "EUR",
			wantDays:       3650,
		},
		{
			name:           "reminder of wrong type",
			request:        map[string]interface{}{"reminder_time": "soon"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoJSON(t, http.MethodPut, ts.URL("/api/settings"), tt.request, token)
			defer resp.Body.Close()

			if tt.expectedStatus != http.StatusOK {
				testutil.AssertErrorResponse(t, resp, tt.expectedStatus)
				return
			}

			testutil.AssertStatusCode(t, resp, http.StatusOK)
			var data settingData
			env := testutil.DecodeEnvelope(t, resp, &data)
			assert.Equal(t, user.Username+" with setting update", env.Message)
			assert.Equal(t, tt.wantCurrency, data.Setting.Currency)
			assert.Equal(t, tt.wantDays, data.Setting.ReminderTime)
		})
	}
}
