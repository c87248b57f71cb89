package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/checklist/internal/client/models"
	"github.com/dmitrijs2005/checklist/internal/logging"
	"github.com/go-resty/resty/v2"
)

const usersFetchFailed = "Failed to fetch users."

type messageResponse struct {
	Message string `json:"message"`
}

// RESTClient talks JSON over HTTP to the checklist backend.
type RESTClient struct {
	http   *resty.Client
	tokens TokenSource
	log    logging.Logger
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient builds a client for baseURL. A zero timeout leaves requests
// unbounded; retries are disabled.
func NewRESTClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *RESTClient {
	if log == nil {
		log = logging.Discard()
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &RESTClient{http: c, tokens: tokens, log: log.With("component", "gateway")}
}

type call struct {
	method     string
	path       string
	pathParams map[string]string
	auth       bool
	body       any
}

// do performs c and returns the raw response on a 2xx status.
func (s *RESTClient) do(ctx context.Context, c call) (*resty.Response, error) {
	req := s.http.R().SetContext(ctx)
	if c.body != nil {
		req.SetBody(c.body)
	}
	if c.pathParams != nil {
		req.SetPathParams(c.pathParams)
	}
	if c.auth {
		token := ""
		if s.tokens != nil {
			token = s.tokens.Token()
		}
		if token == "" {
			return nil, ErrUnauthorized
		}
		req.SetAuthToken(token)
	}

	resp, err := req.Execute(c.method, c.path)
	if err != nil {
		s.log.Warn(ctx, "request failed", "method", c.method, "path", c.path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.log.Debug(ctx, "request done", "method", c.method, "path", c.path, "status", resp.StatusCode(), "elapsed", resp.Time())

	if !resp.IsSuccess() {
		var m messageResponse
		s.decodeOptional(ctx, c, resp, &m)
		return resp, &APIError{StatusCode: resp.StatusCode(), Message: m.Message}
	}
	return resp, nil
}

func decode[T any](resp *resty.Response, what string) (T, error) {
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", what, err)
	}
	return v, nil
}

// decodeOptional fills v from a body the caller can do without. A body
// that does not decode leaves v as it was.
func (s *RESTClient) decodeOptional(ctx context.Context, c call, resp *resty.Response, v any) {
	if len(resp.Body()) == 0 {
		return
	}
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		s.log.Debug(ctx, "decode response body", "method", c.method, "path", c.path, "status", resp.StatusCode(), "error", err)
	}
}

// message runs c and returns the "message" of a successful response.
func (s *RESTClient) message(ctx context.Context, c call) (string, error) {
	resp, err := s.do(ctx, c)
	if err != nil {
		return "", err
	}
	var m messageResponse
	s.decodeOptional(ctx, c, resp, &m)
	return m.Message, nil
}

func (s *RESTClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	c := call{
		method: http.MethodPost,
		path:   "/login",
		body:   map[string]string{"username": username, "password": password},
	}
	resp, err := s.do(ctx, c)
	if err != nil {
		return LoginResult{}, err
	}

	var body struct {
		LoginResult
		Message string `json:"message"`
	}
	s.decodeOptional(ctx, c, resp, &body)
	if body.Token == "" {
		return LoginResult{}, &APIError{StatusCode: resp.StatusCode(), Message: body.Message}
	}
	return body.LoginResult, nil
}

func (s *RESTClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	return s.message(ctx, call{
		method: http.MethodPost,
		path:   "/user/change-password",
		auth:   true,
		body:   map[string]string{"currentPassword": currentPassword, "newPassword": newPassword},
	})
}

func (s *RESTClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	return s.message(ctx, call{
		method: http.MethodPost,
		path:   "/forgot-password",
		body:   map[string]string{"email": email},
	})
}

func (s *RESTClient) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	return s.message(ctx, call{
		method: http.MethodPost,
		path:   "/reset-password",
		body:   map[string]string{"token": token, "newPassword": newPassword},
	})
}

// ListUsers needs an admin credential. A 403 yields ErrAccessDenied; any
// other failure status is reported with the server's message, or a generic
// one when it sent none.
func (s *RESTClient) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := s.do(ctx, call{method: http.MethodGet, path: "/users", auth: true})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == http.StatusForbidden {
				return nil, ErrAccessDenied
			}
			if apiErr.Message == "" {
				apiErr.Message = usersFetchFailed
			}
		}
		return nil, err
	}
	return decode[[]models.User](resp, "users")
}

func (s *RESTClient) RegisterUser(ctx context.Context, u models.NewUser) (string, error) {
	return s.message(ctx, call{method: http.MethodPost, path: "/register", auth: true, body: u})
}

func (s *RESTClient) ListChecklists(ctx context.Context) ([]models.Checklist, error) {
	resp, err := s.do(ctx, call{method: http.MethodGet, path: "/checklists", auth: true})
	if err != nil {
		return nil, err
	}
	return decode[[]models.Checklist](resp, "checklists")
}

func (s *RESTClient) GetChecklist(ctx context.Context, id models.ID) (models.Checklist, error) {
	resp, err := s.do(ctx, call{
		method:     http.MethodGet,
		path:       "/checklists/{id}",
		pathParams: map[string]string{"id": id.String()},
		auth:       true,
	})
	if err != nil {
		return models.Checklist{}, err
	}
	return decode[models.Checklist](resp, "checklist")
}

func (s *RESTClient) save(ctx context.Context, c call) (SaveResult, error) {
	resp, err := s.do(ctx, c)
	if err != nil {
		return SaveResult{}, err
	}
	var r SaveResult
	s.decodeOptional(ctx, c, resp, &r)
	return r, nil
}

func (s *RESTClient) CreateChecklist(ctx context.Context, c models.Checklist) (SaveResult, error) {
	c.ID = nil
	return s.save(ctx, call{method: http.MethodPost, path: "/checklists", auth: true, body: c})
}

func (s *RESTClient) UpdateChecklist(ctx context.Context, id models.ID, c models.Checklist) (SaveResult, error) {
	c.ID = nil
	return s.save(ctx, call{
		method:     http.MethodPut,
		path:       "/checklists/{id}",
		pathParams: map[string]string{"id": id.String()},
		auth:       true,
		body:       c,
	})
}

func (s *RESTClient) DeleteChecklist(ctx context.Context, id models.ID) (string, error) {
	return s.message(ctx, call{
		method:     http.MethodDelete,
		path:       "/checklists/{id}",
		pathParams: map[string]string{"id": id.String()},
		auth:       true,
	})
}
