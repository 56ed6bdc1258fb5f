// internal/service/dashboard/dashboard_test.go
package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hopegivers-web/internal/apiclient"
	"hopegivers-web/internal/service/dashboard"
)

func newService(t *testing.T, routes map[string]interface{}) *dashboard.Service {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"statusCode": 404,
				"message":    "not found",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"statusCode": 200,
			"message":    "ok",
			"data":       data,
		})
	}))
	t.Cleanup(srv.Close)

	api := apiclient.New(srv.URL, 5*time.Second, zap.NewNop())
	return dashboard.NewService(api, zap.NewNop())
}

func TestUserDashboardAggregates(t *testing.T) {
	svc := newService(t, map[string]interface{}{
		"/auth/me": map[string]interface{}{
			"userName": "wanjiku",
			"fullName": "Wanjiku Kamau",
		},
		"/donations/mine": []map[string]interface{}{
			{"id": 1, "charityId": 7, "amount": 50.0, "currency": "KES"},
			{"id": 2, "charityId": 9, "amount": 25.0, "currency": "KES"},
		},
		"/help-requests/mine": []map[string]interface{}{
			{"id": 3, "subject": "school fees", "status": "open"},
		},
	})

	dash, err := svc.User(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, "wanjiku", dash.Profile.UserName)
	assert.Len(t, dash.Donations, 2)
	require.Len(t, dash.HelpRequests, 1)
	assert.Equal(t, "school fees", dash.HelpRequests[0].Subject)
}

func TestUserDashboardFailsWhenAnyFetchFails(t *testing.T) {
	svc := newService(t, map[string]interface{}{
		"/auth/me":        map[string]interface{}{"userName": "wanjiku"},
		"/donations/mine": []map[string]interface{}{},
		// /help-requests/mine missing -> 404
	})

	_, err := svc.User(context.Background(), "tok")
	require.Error(t, err)
}

func TestCharityDashboardKeysOffOwnCharity(t *testing.T) {
	svc := newService(t, map[string]interface{}{
		"/charities/mine": map[string]interface{}{
			"id":   12,
			"name": "Hope Shelter",
		},
		"/charities/12/branches": []map[string]interface{}{
			{"id": 1, "charityId": 12, "name": "Westlands", "city": "Nairobi"},
		},
		"/donations/goods/incoming": []map[string]interface{}{
			{"id": 5, "charityId": 12, "category": "clothes", "quantity": 4},
		},
		"/posts": []map[string]interface{}{
			{"id": 8, "charityId": 12, "title": "Drive this weekend"},
		},
	})

	dash, err := svc.Charity(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, int64(12), dash.Charity.ID)
	require.Len(t, dash.Branches, 1)
	assert.Equal(t, "Westlands", dash.Branches[0].Name)
	assert.Len(t, dash.GoodsDonations, 1)
	assert.Len(t, dash.Posts, 1)
}

func TestCharityDashboardStopsWithoutCharity(t *testing.T) {
	svc := newService(t, map[string]interface{}{})

	_, err := svc.Charity(context.Background(), "tok")
	require.Error(t, err)
}

func TestAdminDashboardAggregates(t *testing.T) {
	svc := newService(t, map[string]interface{}{
		"/admin/charities/pending": []map[string]interface{}{
			{"id": 3, "name": "New Hope", "status": "pending"},
		},
		"/admin/reports": []map[string]interface{}{
			{"id": 1, "targetType": "post", "targetId": 9, "reason": "spam"},
		},
		"/admin/stats": map[string]interface{}{
			"users":     120,
			"charities": 14,
			"donations": 560,
		},
	})

	dash, err := svc.Admin(context.Background(), "tok")
	require.NoError(t, err)

	require.Len(t, dash.PendingCharities, 1)
	assert.Equal(t, "New Hope", dash.PendingCharities[0].Name)
	assert.Len(t, dash.OpenReports, 1)
	require.NotNil(t, dash.Stats)
	assert.Equal(t, int64(120), dash.Stats.Users)
}
