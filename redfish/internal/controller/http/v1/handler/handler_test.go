package v1

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/logger"
	"github.com/rackhd/redfish-gateway/redfish/internal/infrastructure/schema"
	sessionstore "github.com/rackhd/redfish-gateway/redfish/internal/infrastructure/sessions"
	"github.com/rackhd/redfish-gateway/redfish/internal/mocks"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/fetcher"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/managers"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/sel"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/sessions"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/systems"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/vendor"
	"github.com/rackhd/redfish-gateway/redfish/openapi"
)

const (
	testBasePath  = "/redfish/v1"
	testNodeID    = "5a5f6f5a1d8d2e0f0c6b1a11"
	testManagerID = "RackHD"
	testUser      = "admin"
	testPassword  = "secret"
	testJWTKey    = "test-jwt-key"
)

type testServer struct {
	engine    *gin.Engine
	inventory *mocks.MockInventory
	catalogs  *mocks.MockCatalogs
	workflows *mocks.MockWorkflows
	ssdp      *mocks.MockSSDP
	host      *mocks.MockHost
	sessions  *sessions.UseCase
}

func newTestServer(t *testing.T, withAuth bool) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	log := logger.New("error")

	ts := &testServer{
		inventory: mocks.NewMockInventory(ctrl),
		catalogs:  mocks.NewMockCatalogs(ctrl),
		workflows: mocks.NewMockWorkflows(ctrl),
		ssdp:      mocks.NewMockSSDP(ctrl),
		host:      mocks.NewMockHost(ctrl),
	}

	validator, err := schema.New(context.Background(), openapi.Spec)
	require.NoError(t, err)

	f := fetcher.New(ts.inventory, ts.catalogs, mocks.NewMockPollers(ctrl), nil, log)
	registry := vendor.NewRegistry(vendor.Deps{
		Fetcher:      f,
		Translator:   sel.New(f, testBasePath),
		Log:          log,
		BasePath:     testBasePath,
		ManagerID:    testManagerID,
		ShareName:    "/nfs",
		ShareAddress: "172.31.128.1",
		NFSDirectory: t.TempDir(),
	})

	ts.sessions = sessions.New(sessionstore.NewMemory(time.Minute), log, sessions.Options{
		AdminUsername: testUser,
		AdminPassword: testPassword,
		JWTKey:        testJWTKey,
	})

	opts := RouteOptions{BasePath: testBasePath}
	if withAuth {
		opts.Auth = Authenticate(AuthOptions{
			Username: testUser,
			Password: testPassword,
			JWTKey:   testJWTKey,
			Sessions: ts.sessions,
		})
	}

	ts.engine = gin.New()
	RegisterRoutes(ts.engine, Handlers{
		ServiceRoot: CreateServiceRootHandler(ServiceRootOptions{
			BasePath: testBasePath,
			StateDir: t.TempDir(),
			OpenAPI:  openapi.Spec,
		}, log),
		Health:  CreateHealthHandler(nil, "test", log),
		Systems: CreateSystemsHandler(systems.New(ts.inventory, registry, ts.workflows, validator, log, testBasePath), log),
		Managers: CreateManagersHandler(managers.New(ts.inventory, f, ts.ssdp, ts.host, log, managers.Options{
			ReservedID: testManagerID,
			BasePath:   testBasePath,
			Northbound: []managers.Endpoint{{Port: 8080}},
		}), log),
		Sessions: CreateSessionsHandler(ts.sessions, testBasePath, log),
	}, opts)

	return ts
}

func (ts *testServer) do(method, path string, body []byte, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)

	return w
}

func genericNode() *entity.Node {
	return &entity.Node{ID: testNodeID, Name: "compute", Type: entity.NodeTypeCompute}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	envelope, ok := decode(t, w)["error"].(map[string]interface{})
	require.True(t, ok, "missing error envelope")

	msg, _ := envelope["message"].(string)

	return msg
}

func errorMessageID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	body := decode(t, w)
	envelope, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "missing error envelope")

	info, ok := envelope["@Message.ExtendedInfo"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, info)

	first, ok := info[0].(map[string]interface{})
	require.True(t, ok)

	id, _ := first["MessageId"].(string)

	return id
}
