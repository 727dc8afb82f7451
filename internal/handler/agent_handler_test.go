package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
	portmocks "github.com/arturoeanton/realty-admin-backend/internal/port/mocks"
	"github.com/arturoeanton/realty-admin-backend/internal/service"
	"github.com/arturoeanton/realty-admin-backend/internal/service/mocks"
)

type agentFixture struct {
	app     *fiber.App
	people  *portmocks.MockPeopleSource
	store   *mocks.MockAgentStore
	tracker *JobTracker
}

func newAgentFixture(t *testing.T) *agentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &agentFixture{
		people:  portmocks.NewMockPeopleSource(ctrl),
		store:   mocks.NewMockAgentStore(ctrl),
		tracker: NewJobTracker(),
	}
	svc := service.NewAgentService(f.people, f.store, service.AgentConfig{
		OrgIDs:   []string{"50449", "2414288"},
		PageSize: 10,
	}, discardLogger())

	f.app = fiber.New()
	NewAgentHandler(svc, f.tracker, nil).Register(f.app.Group("/api"), testAuth())
	return f
}

func upsertEcho(_ context.Context, a *domain.Agent) (*domain.Agent, error) {
	out := *a
	out.ID = "id-" + a.Slug
	return &out, nil
}

func (f *agentFixture) expectOrg(orgID string, people ...domain.Person) {
	f.people.EXPECT().FetchPeoplePage(gomock.Any(), orgID, 0, 10).Return(&domain.PeoplePage{People: people}, nil)
}

func TestAgentHandler_SyncOrgPaginatesResult(t *testing.T) {
	f := newAgentFixture(t)
	f.expectOrg("50449",
		domain.Person{KWUID: "A1", FirstName: "Sara"},
		domain.Person{KWUID: "B2", FirstName: "Omar"},
	)
	f.store.EXPECT().UpsertAgentBySlug(gomock.Any(), gomock.Any()).DoAndReturn(upsertEcho).Times(2)

	resp, body := call(t, f.app, http.MethodGet, "/api/agent/50449?page=2&limit=1", nil, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "50449", body["org_id"])
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(1), body["per_page"])
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, "b2", body["data"].([]any)[0].(map[string]any)["slug"])
}

func TestAgentHandler_MergeUsesConfiguredOrgs(t *testing.T) {
	f := newAgentFixture(t)
	f.expectOrg("50449", domain.Person{KWUID: "A1", FirstName: "Sara"})
	f.expectOrg("2414288", domain.Person{KWUID: "a1", FirstName: "Sara"}, domain.Person{KWUID: "C3", FirstName: "Lina"})
	f.store.EXPECT().UpsertAgentBySlug(gomock.Any(), gomock.Any()).DoAndReturn(upsertEcho).Times(2)

	resp, body := call(t, f.app, http.MethodGet, "/api/agents/merge", nil, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"50449", "2414288"}, body["org_ids"])
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(DefaultSyncPerPage), body["per_page"])
}

func TestAgentHandler_SyncRejectsBadActive(t *testing.T) {
	f := newAgentFixture(t)

	resp, _ := call(t, f.app, http.MethodGet, "/api/agent/50449?active=maybe", nil, "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAgentHandler_ListMapsQuery(t *testing.T) {
	f := newAgentFixture(t)
	f.store.EXPECT().ListAgents(gomock.Any(), domain.AgentFilter{Name: "sa", City: "Riyadh", Offset: 5, Limit: 5}).
		Return([]domain.Agent{{ID: "1"}}, 6, nil)

	resp, body := call(t, f.app, http.MethodGet, "/api/agents?name=sa&marketCenter=MARKET%20CENTER&city=Riyadh&page=2&limit=5", nil, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(6), body["total"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(1), body["count"])
}

func TestAgentHandler_MutationsNeedAuth(t *testing.T) {
	f := newAgentFixture(t)

	resp, _ := call(t, f.app, http.MethodPost, "/api/agents", map[string]any{"fullName": "Sara", "email": "s@example.com"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	f.store.EXPECT().FindAgentByEmail(gomock.Any(), "s@example.com").Return(nil, port.ErrNotFound)
	f.store.EXPECT().CreateAgent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Agent) (*domain.Agent, error) {
		a.ID = "new"
		return a, nil
	})

	resp, body := call(t, f.app, http.MethodPost, "/api/agents", map[string]any{"fullName": "Sara", "email": "s@example.com"}, tokenFor(t, testSubadmin))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Agent created successfully", body["message"])
	assert.Equal(t, "sara", body["data"].(map[string]any)["slug"])

	f.store.EXPECT().DeleteAgent(gomock.Any(), "gone").Return(port.ErrNotFound)
	resp, body = call(t, f.app, http.MethodDelete, "/api/agents/gone", nil, tokenFor(t, testSubadmin))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Agent not found", body["message"])
}

func TestAgentHandler_StartSyncRunsInBackground(t *testing.T) {
	f := newAgentFixture(t)
	f.expectOrg("777", domain.Person{KWUID: "Z", FirstName: "Zed"})
	f.store.EXPECT().UpsertAgentBySlug(gomock.Any(), gomock.Any()).DoAndReturn(upsertEcho)

	resp, body := call(t, f.app, http.MethodPost, "/api/agents/sync", map[string]any{"org_ids": []string{"777"}}, tokenFor(t, testAdmin))

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	jobID, _ := body["job_id"].(string)
	require.NotEmpty(t, jobID)

	require.Eventually(t, func() bool {
		job, ok := f.tracker.GetJob(jobID)
		return ok && job.Status == JobComplete
	}, 2*time.Second, 10*time.Millisecond)

	job, _ := f.tracker.GetJob(jobID)
	assert.Equal(t, []string{"777"}, job.OrgIDs)
	assert.Equal(t, 1, job.Stats.Synced)
}
