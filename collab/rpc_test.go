package collab_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logident/logident/collab"
)

func TestDispatcherClassify(t *testing.T) {
	t.Parallel()

	d := collab.NewDispatcher(nil)
	body := []byte(`{"id":1,"method":"classify","params":{"value":"10.0.0.1"}}`)

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	d.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ip"`)
}

func TestDispatcherUnknownMethod(t *testing.T) {
	t.Parallel()

	d := collab.NewDispatcher(nil)
	body := []byte(`{"id":1,"method":"bogus","params":{}}`)

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	d.Router().ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestDispatcherExtract(t *testing.T) {
	t.Parallel()

	d := collab.NewDispatcher(nil)
	body := []byte(`{"id":1,"method":"extract","params":{"line":"connection from 10.0.0.1 accepted"}}`)

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	d.Router().ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), `"10.0.0.1"`)
}
