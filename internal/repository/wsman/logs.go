// Package wsman talks to the Dell WSMAN microservice that reads iDRAC logs.
package wsman

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LogType names an iDRAC log.
type LogType string

const (
	LogSEL LogType = "SEL"
	LogLC  LogType = "LC"

	defaultRetryMax = 3
)

// ErrLogRequestFailed indicates the WSMAN service answered with a non-2xx status.
var ErrLogRequestFailed = errors.New("wsman log request failed")

type logRequest struct {
	ServerAddress string `json:"serverAddress"`
	UserName      string `json:"userName"`
	Password      string `json:"password"`
}

// LogClient reads iDRAC logs through the WSMAN service.
type LogClient struct {
	baseURL string
	client  *retryablehttp.Client
}

// NewLogClient builds a client for the WSMAN service at baseURL.
func NewLogClient(baseURL string, timeout time.Duration, log logger.Interface) *LogClient {
	client := retryablehttp.NewClient()
	client.RetryMax = defaultRetryMax
	client.Logger = logger.Leveled(log)

	if timeout > 0 {
		client.HTTPClient.Timeout = timeout
	}

	return &LogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// SelLog returns the iDRAC System Event Log, newest first.
func (c *LogClient) SelLog(ctx context.Context, target entity.BMCCredentials) ([]entity.WsmanSelEntry, error) {
	var entries []entity.WsmanSelEntry
	if err := c.getLog(ctx, target, LogSEL, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// LcLog returns the Lifecycle Controller log, newest first.
func (c *LogClient) LcLog(ctx context.Context, target entity.BMCCredentials) ([]entity.WsmanLcEntry, error) {
	var entries []entity.WsmanLcEntry
	if err := c.getLog(ctx, target, LogLC, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (c *LogClient) getLog(ctx context.Context, target entity.BMCCredentials, logType LogType, out interface{}) error {
	body, err := json.Marshal(logRequest{
		ServerAddress: target.Host,
		UserName:      target.User,
		Password:      target.Password,
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/api/1.0/server/logs/%s", c.baseURL, strings.ToLower(string(logType)))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("wsman - getLog %s: %w", logType, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %d: %s", ErrLogRequestFailed, logType, resp.StatusCode, string(payload))
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("wsman - getLog %s - decode: %w", logType, err)
	}

	return nil
}
