package upstream_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-directory/config"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/infrastructure/upstream"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDoctorClient_FetchDoctors(t *testing.T) {
	srv := newServer(t, http.StatusOK, `[
		{"id":"111","name":"Dr. Amit Shah","experience":"13 Years of experience","fees":"₹ 500",
		 "specialities":[{"name":"Dentist"}],"video_consult":true,"in_clinic":false},
		{"id":"112","name":"Dr. Priya Nair","specialities":[],"in_clinic":true}
	]`)

	client := upstream.NewDoctorClient(config.UpstreamConfig{URL: srv.URL}, srv.Client(), quietLogger())
	doctors, err := client.FetchDoctors(context.Background())

	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "111", doctors[0].ID.String())
	assert.Equal(t, "Dr. Amit Shah", doctors[0].Name.String())
	assert.Equal(t, "13 Years of experience", doctors[0].Experience.String())
	assert.True(t, bool(doctors[0].VideoConsult))
	assert.True(t, bool(doctors[1].InClinic))
}

func TestDoctorClient_NonSuccessStatus(t *testing.T) {
	srv := newServer(t, http.StatusBadGateway, `oops`)

	client := upstream.NewDoctorClient(config.UpstreamConfig{URL: srv.URL}, nil, quietLogger())
	_, err := client.FetchDoctors(context.Background())

	assert.ErrorIs(t, err, upstream.ErrFetchFailed)
}

func TestDoctorClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := upstream.NewDoctorClient(config.UpstreamConfig{URL: url}, nil, quietLogger())
	_, err := client.FetchDoctors(context.Background())

	assert.ErrorIs(t, err, upstream.ErrFetchFailed)
}

func TestDoctorClient_ObjectPayload(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"doctors":[]}`)

	client := upstream.NewDoctorClient(config.UpstreamConfig{URL: srv.URL}, nil, quietLogger())
	_, err := client.FetchDoctors(context.Background())

	assert.ErrorIs(t, err, entity.ErrMalformedPayload)
}

func TestDecodeDoctors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		count   int
		wantErr bool
	}{
		{"empty array", `[]`, 0, false},
		{"leading whitespace", "  \n[{\"name\":\"Dr. A\"}]", 1, false},
		{"non object elements", `[1, "x", null, {"name":"Dr. B"}]`, 4, false},
		{"empty body", ``, 0, true},
		{"object", `{}`, 0, true},
		{"truncated", `[{"name":`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctors, err := upstream.DecodeDoctors([]byte(tt.payload), nil)

			if tt.wantErr {
				assert.ErrorIs(t, err, entity.ErrMalformedPayload)
				return
			}
			require.NoError(t, err)
			assert.Len(t, doctors, tt.count)
		})
	}
}

func TestDecodeDoctors_NonObjectElementIsEmpty(t *testing.T) {
	doctors, err := upstream.DecodeDoctors([]byte(`[42, {"name":"Dr. B"}]`), quietLogger())

	require.NoError(t, err)
	assert.Equal(t, entity.RawDoctor{}, doctors[0])
	assert.Equal(t, "Dr. B", doctors[1].Name.String())
}
