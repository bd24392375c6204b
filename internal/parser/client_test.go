package parser

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poisar-hisap/internal/config"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ClientTestSuite is the test suite for the parse webhook client
type ClientTestSuite struct {
	suite.Suite
	userID string
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.userID = "user-123"
}

func (s *ClientTestSuite) newClient(serverURL string) *Client {
	return NewClient(&config.ParserConfig{
		WebhookURL: serverURL,
		Timeout:    5 * time.Second,
		Source:     "bolt",
		Device:     "web",
		Timezone:   "Asia/Kolkata",
	})
}

func (s *ClientTestSuite) TestSubmit_TextInput() {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(s.T(), json.NewDecoder(r.Body).Decode(&captured))
		s.Equal("application/json", r.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":            true,
			"ai_confidence": 0.91,
			"parsed": map[string]interface{}{
				"amount":      120.50,
				"currency":    "INR",
				"date":        "2025-10-14",
				"category":    "Food",
				"subcategory": "Coffee",
			},
		})
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	draft, err := client.Submit(context.Background(), s.userID, TextInput{Text: "coffee 120"}, Meta{})

	require.NoError(s.T(), err)
	s.Equal("coffee 120", captured["text"])
	s.Equal(s.userID, captured["user_id"])
	s.Equal("bolt", captured["source"])
	s.Equal("web", captured["device"])

	meta, ok := captured["meta"].(map[string]interface{})
	require.True(s.T(), ok)
	s.Equal("Asia/Kolkata", meta["timezone"])

	require.NotNil(s.T(), draft.Amount)
	s.Equal("120.5", draft.Amount.String())
	s.Equal("INR", draft.Currency)
	s.Equal("2025-10-14", draft.Date)
	require.NotNil(s.T(), draft.Category)
	s.Equal("Food", *draft.Category)
	require.NotNil(s.T(), draft.Subcategory)
	s.Equal("Coffee", *draft.Subcategory)
	require.NotNil(s.T(), draft.AIConfidence)
	s.InDelta(0.91, *draft.AIConfidence, 0.0001)
}

func (s *ClientTestSuite) TestSubmit_NestedConfidenceUsedWhenTopLevelAbsent() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"parsed":{"amount":55,"ai_confidence":0.42}}`))
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	draft, err := client.Submit(context.Background(), s.userID, TextInput{Text: "lunch 55"}, Meta{})

	require.NoError(s.T(), err)
	require.NotNil(s.T(), draft.Amount)
	s.Equal("55", draft.Amount.String())
	require.NotNil(s.T(), draft.AIConfidence)
	s.InDelta(0.42, *draft.AIConfidence, 0.0001)
}

func (s *ClientTestSuite) TestSubmit_MetaTimezoneOverridesDefault() {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(s.T(), json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	_, err := client.Submit(context.Background(), s.userID, TextInput{Text: "coffee 120"}, Meta{Timezone: "Europe/Berlin"})

	require.NoError(s.T(), err)
	meta, ok := captured["meta"].(map[string]interface{})
	require.True(s.T(), ok)
	s.Equal("Europe/Berlin", meta["timezone"])
}

func (s *ClientTestSuite) TestSubmit_AudioInputIsBase64Encoded() {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(s.T(), json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	audio := []byte{0x52, 0x49, 0x46, 0x46}
	client := s.newClient(server.URL)
	_, err := client.Submit(context.Background(), s.userID, AudioInput{Data: audio, Format: "webm"}, Meta{})

	require.NoError(s.T(), err)
	s.Equal(base64.StdEncoding.EncodeToString(audio), captured["audio"])
	s.Equal("webm", captured["audio_format"])
	s.Nil(captured["text"], "audio submissions carry no text field")
}

func (s *ClientTestSuite) TestSubmit_EmptyResponseYieldsEmptyDraft() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	draft, err := client.Submit(context.Background(), s.userID, TextInput{Text: "something vague"}, Meta{})

	require.NoError(s.T(), err)
	s.Nil(draft.Amount)
	s.Empty(draft.Currency)
	s.Empty(draft.Date)
	s.Nil(draft.AIConfidence, "absent confidence stays absent, it is not zero")
}

func (s *ClientTestSuite) TestSubmit_NonSuccessStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	_, err := client.Submit(context.Background(), s.userID, TextInput{Text: "coffee 120"}, Meta{})

	require.Error(s.T(), err)
	var transportErr *TransportError
	require.ErrorAs(s.T(), err, &transportErr)
	s.Equal(http.StatusBadGateway, transportErr.StatusCode)
}

func (s *ClientTestSuite) TestSubmit_MalformedBody() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"amount": not-json`))
	}))
	defer server.Close()

	client := s.newClient(server.URL)
	_, err := client.Submit(context.Background(), s.userID, TextInput{Text: "coffee 120"}, Meta{})

	require.Error(s.T(), err)
	var transportErr *TransportError
	require.ErrorAs(s.T(), err, &transportErr)
	s.Zero(transportErr.StatusCode)
}

func (s *ClientTestSuite) TestSubmit_UnreachableWebhook() {
	client := s.newClient("http://127.0.0.1:1")
	_, err := client.Submit(context.Background(), s.userID, TextInput{Text: "coffee 120"}, Meta{})

	require.Error(s.T(), err)
	var transportErr *TransportError
	require.ErrorAs(s.T(), err, &transportErr)
}

func (s *ClientTestSuite) TestSubmit_ContextCancelled() {
	started := make(chan struct{})
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	}))
	// Release the handler before Close so the server is not left waiting
	// on the blocked connection.
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	client := s.newClient(server.URL)
	_, err := client.Submit(ctx, s.userID, TextInput{Text: "coffee 120"}, Meta{})

	require.Error(s.T(), err)
}
