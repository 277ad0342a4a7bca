package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appointment-reminder-go/internal/config"
)

func testSender(srv *httptest.Server) *TwilioSender {
	s := NewTwilioSender(config.TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "token",
		FromNumber: "+15550001111",
	})
	s.endpoint = srv.URL
	s.httpClient = srv.Client()
	return s
}

func TestTwilioSend(t *testing.T) {
	var gotTo, gotFrom, gotBody string
	var gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotTo = r.PostForm.Get("To")
		gotFrom = r.PostForm.Get("From")
		gotBody = r.PostForm.Get("Body")
		gotUser, gotPass, _ = r.BasicAuth()
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM42"}`))
	}))
	defer srv.Close()

	s := testSender(srv)
	receipt, err := s.Send(context.Background(), Message{To: "+15551234567", Body: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "SM42", receipt.ProviderMessageID)
	assert.Equal(t, "+15551234567", gotTo)
	assert.Equal(t, "+15550001111", gotFrom)
	assert.Equal(t, "hello", gotBody)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "token", gotPass)
}

func TestTwilioSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"authentication failed"}`))
	}))
	defer srv.Close()

	s := testSender(srv)
	_, err := s.Send(context.Background(), Message{To: "+15551234567", Body: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestTwilioSendValidation(t *testing.T) {
	s := NewTwilioSender(config.TwilioConfig{AccountSID: "AC123", AuthToken: "t", FromNumber: "+15550001111"})

	_, err := s.Send(context.Background(), Message{Body: "hello"})
	assert.Error(t, err)

	_, err = s.Send(context.Background(), Message{To: "+15551234567", Body: "   "})
	assert.Error(t, err)
}
