package v1

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rackhd/redfish-gateway/internal/entity"
)

func TestServiceRoot_Public(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, true)

	w := ts.do(http.MethodGet, testBasePath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, odataVersion, w.Header().Get(headerODataVersion))

	body := decode(t, w)
	assert.Equal(t, odataTypeServiceRoot, body["@odata.type"])
	assert.NotEmpty(t, body["UUID"])
	assert.Equal(t, map[string]interface{}{"@odata.id": testBasePath + "/Systems"}, body["Systems"])
}

func TestServiceRoot_UUIDIsStable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	first, err := loadOrCreateUUID(dir)
	require.NoError(t, err)

	second, err := loadOrCreateUUID(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMetadataAndOData(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, true)

	w := ts.do(http.MethodGet, testBasePath+"/$metadata", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get(headerContentType), contentTypeXML)
	assert.Contains(t, w.Body.String(), "edmx:Edmx")

	w = ts.do(http.MethodGet, testBasePath+"/odata", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Value []ODataService `json:"value"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	names := make([]string, 0, len(doc.Value))
	for _, s := range doc.Value {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{"Managers", "SessionService", "Systems"}, names)
}

func TestProtectedRoutes_RequireAuth(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, true)

	w := ts.do(http.MethodGet, testBasePath+"/Systems", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Base.1.22.0.NoValidSession", errorMessageID(t, w))
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, true)

	w := ts.do(http.MethodPost, testBasePath+"/SessionService/Sessions", []byte(`{"UserName":"admin","Password":"secret"}`))
	require.Equal(t, http.StatusCreated, w.Code)

	token := w.Header().Get(headerAuthToken)
	location := w.Header().Get(headerLocation)
	require.NotEmpty(t, token)
	require.Contains(t, location, testBasePath+"/SessionService/Sessions/")

	ts.inventory.EXPECT().
		FindNodes(gomock.Any(), entity.NodeFilter{Type: entity.NodeTypeCompute}).
		Return([]entity.Node{*genericNode()}, nil)

	w = ts.do(http.MethodGet, testBasePath+"/Systems", nil, headerAuthToken, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["Members@odata.count"])

	w = ts.do(http.MethodGet, location, nil, headerAuthToken, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testUser, decode(t, w)["UserName"])

	w = ts.do(http.MethodDelete, location, nil, headerAuthToken, token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(http.MethodGet, testBasePath+"/SessionService", nil, headerAuthToken, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateSession_BadCredentials(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, true)

	w := ts.do(http.MethodPost, testBasePath+"/SessionService/Sessions", []byte(`{"UserName":"admin","Password":"nope"}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(http.MethodPost, testBasePath+"/SessionService/Sessions", []byte(`{"UserName":"admin"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Base.1.22.0.PropertyMissing", errorMessageID(t, w))
}

func TestReset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantGraph  string
	}{
		{name: "force off", body: `{"reset_type":"ForceOff"}`, wantStatus: http.StatusAccepted, wantGraph: entity.GraphPowerOff},
		{name: "force restart", body: `{"reset_type":"ForceRestart"}`, wantStatus: http.StatusAccepted, wantGraph: entity.GraphReboot},
		{name: "invalid type", body: `{"reset_type":"Nmi"}`, wantStatus: http.StatusBadRequest},
		{name: "missing type", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed", body: `{"reset_type":`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestServer(t, false)

			ts.inventory.EXPECT().NeedByIdentifier(gomock.Any(), testNodeID).Return(genericNode(), nil).AnyTimes()

			if tc.wantGraph != "" {
				ts.workflows.EXPECT().
					Run(gomock.Any(), testNodeID, gomock.Any()).
					DoAndReturn(func(_ context.Context, id string, req entity.GraphRequest) (*entity.WorkflowInstance, error) {
						assert.Equal(t, tc.wantGraph, req.Name)

						return &entity.WorkflowInstance{InstanceID: "wf-1", NodeID: id, Name: req.Name, CreatedAt: time.Now()}, nil
					})
			}

			w := ts.do(http.MethodPost, testBasePath+"/Systems/"+testNodeID+"/Actions/ComputerSystem.Reset", []byte(tc.body))
			require.Equal(t, tc.wantStatus, w.Code, w.Body.String())

			if tc.wantStatus == http.StatusAccepted {
				assert.Equal(t, testBasePath+"/TaskService/Tasks/wf-1", w.Header().Get(headerLocation))
				assert.Equal(t, testBasePath+"/TaskService/Tasks/wf-1", decode(t, w)["@odata.id"])
			}
		})
	}
}

func TestGetSystem_NotFound(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, false)

	ts.inventory.EXPECT().NeedByIdentifier(gomock.Any(), "missing").Return(nil, entity.ErrNodeNotFound)

	w := ts.do(http.MethodGet, testBasePath+"/Systems/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Base.1.22.0.ResourceMissingAtURI", errorMessageID(t, w))
}

func TestUnknownNode_MessageIsClean(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, false)

	ts.inventory.EXPECT().
		NeedByIdentifier(gomock.Any(), "nosuch").
		Return(nil, fmt.Errorf("%w: %s", entity.ErrNodeNotFound, "nosuch")).
		Times(2)

	w := ts.do(http.MethodGet, testBasePath+"/Systems/nosuch", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "node not found: nosuch", errorMessage(t, w))

	w = ts.do(http.MethodPost, testBasePath+"/Systems/nosuch/Actions/ComputerSystem.Reset", []byte(`{"reset_type":"Nmi"}`))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "node not found: nosuch", errorMessage(t, w))
	assert.NotContains(t, w.Body.String(), "Classify")
}

func TestGetProcessor_UnknownSocket(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, false)

	ts.inventory.EXPECT().NeedByIdentifier(gomock.Any(), testNodeID).Return(genericNode(), nil)
	ts.catalogs.EXPECT().
		FindLatestCatalogOfSource(gomock.Any(), testNodeID, "ohai").
		Return(&entity.Catalog{NodeID: testNodeID, Source: "ohai", Data: map[string]interface{}{
			"cpu": map[string]interface{}{"0": map[string]interface{}{"model_name": "Xeon"}},
		}}, nil)
	ts.catalogs.EXPECT().
		FindLatestCatalogOfSource(gomock.Any(), testNodeID, "dmi").
		Return(&entity.Catalog{NodeID: testNodeID, Source: "dmi", Data: map[string]interface{}{}}, nil)

	w := ts.do(http.MethodGet, testBasePath+"/Systems/"+testNodeID+"/Processors/100", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "invalid socketId", errorMessage(t, w))
}

func TestLcLogService_NonDell(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, false)

	ts.inventory.EXPECT().NeedByIdentifier(gomock.Any(), testNodeID).Return(genericNode(), nil)

	w := ts.do(http.MethodGet, testBasePath+"/Systems/"+testNodeID+"/LogServices/lc", nil)
	require.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "Not implemented for non-Dell hardware.", errorMessage(t, w))
}

func TestGetManager_Gateway(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, false)

	ts.inventory.EXPECT().
		FindNodes(gomock.Any(), entity.NodeFilter{Type: entity.NodeTypeCompute}).
		Return([]entity.Node{*genericNode()}, nil)
	ts.ssdp.EXPECT().Enabled().Return(true)
	ts.host.EXPECT().Hostname().Return("rackhd", nil)
	ts.host.EXPECT().FQDN().Return("rackhd.example.com", nil)

	w := ts.do(http.MethodGet, testBasePath+"/Managers/"+testManagerID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, testManagerID, body["Id"])
	assert.Equal(t, testBasePath+"/Managers/"+testManagerID, body["@odata.id"])
}

func TestGetProcessor_InvalidSocket(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, false)

	w := ts.do(http.MethodGet, testBasePath+"/Systems/"+testNodeID+"/Processors/first", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSecureBoot_NonDell(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, false)

	ts.inventory.EXPECT().NeedByIdentifier(gomock.Any(), testNodeID).Return(genericNode(), nil).AnyTimes()

	w := ts.do(http.MethodGet, testBasePath+"/Systems/"+testNodeID+"/SecureBoot", nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "Base.1.22.0.ActionNotSupported", errorMessageID(t, w))

	w = ts.do(http.MethodPost, testBasePath+"/Systems/"+testNodeID+"/SecureBoot", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchManager(t *testing.T) {
	t.Parallel()

	t.Run("non reserved", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, false)

		w := ts.do(http.MethodPatch, testBasePath+"/Managers/"+testNodeID, []byte(`{}`))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "method not allowed", errorMessage(t, w))
	})

	t.Run("toggles ssdp", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, false)

		ts.inventory.EXPECT().
			FindNodes(gomock.Any(), entity.NodeFilter{Type: entity.NodeTypeCompute}).
			Return([]entity.Node{*genericNode()}, nil)
		ts.ssdp.EXPECT().SetEnabled(false)

		w := ts.do(http.MethodPatch, testBasePath+"/Managers/"+testManagerID,
			[]byte(`{"NetworkProtocol":{"SSDP":{"ProtocolEnabled":false}}}`))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestUnknownRouteAndMethod(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, false)

	w := ts.do(http.MethodPut, testBasePath+"/Systems", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Base.1.22.0.OperationNotAllowed", errorMessageID(t, w))

	w = ts.do(http.MethodGet, testBasePath+"/Chassis/unknown/Thermal", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, true)

	w := ts.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}
