package accounts

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/javer-bank/javer/internal/gateway/storeclient"
	"github.com/javer-bank/javer/pkg/clients"
)

// newStubStore starts an httptest server playing the internal store and
// returns a handler wired against it.
func newStubStore(handler http.Handler) (*AccountHandler, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(storeclient.New(srv.URL, clients.NewHTTPClient())), srv
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

const validAccountJSON = `{
	"agency": "1234",
	"account_number": "99999",
	"holder_name": "Maria Souza",
	"taxpayer_id": "12345678901",
	"phone": "11999999999",
	"email": "maria@bank.example",
	"is_account_holder": true,
	"balance": 100.5
}`

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("forwards a valid payload", func(t *testing.T) {
		t.Parallel()
		var gotBody string
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/accounts", r.URL.Path)
			buf, _ := io.ReadAll(r.Body)
			gotBody = string(buf)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":1,"agency":"1234"}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(validAccountJSON))
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1,"agency":"1234"}`, w.Body.String())
		assert.JSONEq(t, validAccountJSON, gotBody)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("store must not be called")
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader("{bad"))
		handler.Create(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "REQUEST_VALIDATION")
	})

	t.Run("collects every field failure", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("store must not be called")
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/accounts",
			strings.NewReader(`{"agency":"12","account_number":"999","taxpayer_id":"123","phone":"1","email":"nope"}`))
		handler.Create(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "agency must be a 3 to 4 digit string")
		assert.Contains(t, body, "account number must be a 4 to 8 digit string")
		assert.Contains(t, body, "taxpayer id must be an 11 digit string")
		assert.Contains(t, body, "phone must be a 10 to 11 digit string")
		assert.Contains(t, body, "email must be a valid address")
	})

	t.Run("rejects a negative opening balance before the store", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("store must not be called")
		}))
		defer srv.Close()

		payload := strings.Replace(validAccountJSON, "100.5", "-1", 1)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(payload))
		handler.Create(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "NEGATIVE_INITIAL_BALANCE")
	})

	t.Run("passes an upstream conflict through", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"detail":{"status":409,"code":"DUPLICATE_ACCOUNT","message":"account already exists"}}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(validAccountJSON))
		handler.Create(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "DUPLICATE_ACCOUNT")
		assert.Contains(t, w.Body.String(), "account already exists")
	})

	t.Run("reports the store as unavailable", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(validAccountJSON))
		handler.Create(w, r)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_STORE_UNAVAILABLE")
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
	}))
	defer srv.Close()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	handler.List(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, w.Body.String())
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("relays the account", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/accounts/1234/99999", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":1,"agency":"1234"}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodGet, "/accounts/1234/99999", nil),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"agency":"1234"}`, w.Body.String())
	})

	t.Run("relays not found", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":{"status":404,"code":"ACCOUNT_NOT_FOUND","message":"account not found"}}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodGet, "/accounts/1234/99999", nil),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ACCOUNT_NOT_FOUND")
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("validates only the supplied fields", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/accounts/1234/99999", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":1,"holder_name":"Ana"}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodPut, "/accounts/1234/99999",
			strings.NewReader(`{"holder_name":"Ana"}`)),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a bad supplied field", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("store must not be called")
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodPut, "/accounts/1234/99999",
			strings.NewReader(`{"phone":"1"}`)),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.Update(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "phone must be a 10 to 11 digit string")
	})
}

func TestDeactivate(t *testing.T) {
	t.Parallel()

	t.Run("deletes a zero balance account", func(t *testing.T) {
		t.Parallel()
		var deleted bool
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_, _ = w.Write([]byte(`{"id":1,"agency":"1234","account_number":"99999","balance":0}`))
			case http.MethodDelete:
				assert.Equal(t, "/accounts/1234/99999/deactivate", r.URL.Path)
				deleted = true
				w.WriteHeader(http.StatusNoContent)
			}
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodDelete, "/accounts/1234/99999/deactivate", nil),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.Deactivate(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, deleted)
	})

	t.Run("refuses when the balance is not zero", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodDelete {
				t.Error("delete must not be called")
			}
			_, _ = w.Write([]byte(`{"id":1,"agency":"1234","account_number":"99999","balance":10}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodDelete, "/accounts/1234/99999/deactivate", nil),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.Deactivate(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "BALANCE_NOT_ZERO")
	})
}

func TestOperations(t *testing.T) {
	t.Parallel()

	t.Run("forwards a deposit", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/accounts/operations/deposit", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":1,"balance":120}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/accounts/operations/deposit",
			strings.NewReader(`{"agency":"1234","account_number":"99999","saldo":120}`))
		handler.Deposit(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"balance":120}`, w.Body.String())
	})

	t.Run("rejects a non positive amount", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("store must not be called")
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/accounts/operations/withdraw",
			strings.NewReader(`{"agency":"1234","account_number":"99999","saldo":0}`))
		handler.Withdraw(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "amount must be greater than zero")
	})

	t.Run("passes a withdrawal conflict through", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/accounts/operations/withdraw", r.URL.Path)
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"detail":{"status":409,"code":"INSUFFICIENT_BALANCE","message":"insufficient balance"}}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/accounts/operations/withdraw",
			strings.NewReader(`{"agency":"1234","account_number":"99999","saldo":500}`))
		handler.Withdraw(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "INSUFFICIENT_BALANCE")
	})
}

func TestRegisterOverdraft(t *testing.T) {
	t.Parallel()

	t.Run("resolves the id then applies the change", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				assert.Equal(t, "/accounts/1234/99999", r.URL.Path)
				_, _ = w.Write([]byte(`{"id":7,"agency":"1234","account_number":"99999","balance":0}`))
			case http.MethodPut:
				assert.Equal(t, "/accounts/7/overdraft/register", r.URL.Path)
				_, _ = w.Write([]byte(`{"id":7,"overdraft_enabled":true,"overdraft_limit":100}`))
			}
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodPut, "/accounts/1234/99999/overdraft/register",
			strings.NewReader(`{"enabled":true,"limit":100}`)),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.RegisterOverdraft(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"overdraft_enabled":true`)
	})

	t.Run("relays a disable conflict", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				_, _ = w.Write([]byte(`{"id":7,"agency":"1234","account_number":"99999","balance":-50}`))
				return
			}
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"detail":{"status":409,"code":"OVERDRAFT_DISABLE_WITH_NEGATIVE_BALANCE","message":"cannot disable overdraft while the balance is negative"}}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodPut, "/accounts/1234/99999/overdraft/register",
			strings.NewReader(`{"enabled":false}`)),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.RegisterOverdraft(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "OVERDRAFT_DISABLE_WITH_NEGATIVE_BALANCE")
	})
}

func TestScore(t *testing.T) {
	t.Parallel()

	t.Run("computes from the live balance", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":1,"agency":"1234","account_number":"99999","balance":200}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodGet, "/accounts/1234/99999/credit_score", nil),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.Score(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"agency":"1234","account_number":"99999","credit_score":20}`, w.Body.String())
	})

	t.Run("zero for a negative balance", func(t *testing.T) {
		t.Parallel()
		handler, srv := newStubStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":1,"agency":"1234","account_number":"99999","balance":-50}`))
		}))
		defer srv.Close()

		w := httptest.NewRecorder()
		r := withURLParams(httptest.NewRequest(http.MethodGet, "/accounts/1234/99999/credit_score", nil),
			map[string]string{"agency": "1234", "number": "99999"})
		handler.Score(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"agency":"1234","account_number":"99999","credit_score":0}`, w.Body.String())
	})
}
