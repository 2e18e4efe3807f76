package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nluthra2001/cpusched/internal/server"
	"github.com/nluthra2001/cpusched/internal/simulation"
)

const baseURL = "http://simulator.test"

func TestClient_Simulate(t *testing.T) {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	defer httpmock.DeactivateAndReset()

	c := New(baseURL+"/", httpClient)
	request := simulation.Request{
		Algorithm: "srtf",
		Processes: []simulation.ProcessSpec{{ID: 1, Burst: 5}, {ID: 2, Arrival: 1, Burst: 2}},
	}

	tests := []struct {
		name    string
		expects func()
		want    simulation.Report
		wantErr error
	}{
		{
			name: "report returned",
			expects: func() {
				httpmock.RegisterResponder(http.MethodPost, baseURL+"/simulate",
					func(req *http.Request) (*http.Response, error) {
						var got simulation.Request
						if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
							return httpmock.NewStringResponse(http.StatusBadRequest, `{"error":"bad body"}`), nil
						}
						if got.Algorithm != "srtf" || len(got.Processes) != 2 {
							return httpmock.NewStringResponse(http.StatusBadRequest, `{"error":"wrong request"}`), nil
						}
						return httpmock.NewJsonResponse(http.StatusOK, simulation.Report{Algorithm: "srtf", Stats: simulation.Stats{Count: 2, Makespan: 7}})
					},
				)
			},
			want: simulation.Report{Algorithm: "srtf", Stats: simulation.Stats{Count: 2, Makespan: 7}},
		},
		{
			name: "error body surfaced",
			expects: func() {
				httpmock.RegisterResponder(http.MethodPost, baseURL+"/simulate",
					httpmock.NewStringResponder(http.StatusBadRequest, `{"error":"invalid process: process 1 has burst time 0"}`),
				)
			},
			wantErr: ErrStatus,
		},
		{
			name: "server failure without body",
			expects: func() {
				httpmock.RegisterResponder(http.MethodPost, baseURL+"/simulate",
					httpmock.NewStringResponder(http.StatusBadGateway, ""),
				)
			},
			wantErr: ErrStatus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			tt.expects()

			got, err := c.Simulate(context.Background(), request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}

func TestClient_ErrorMessage(t *testing.T) {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, baseURL+"/algorithms",
		httpmock.NewStringResponder(http.StatusServiceUnavailable, `{"error":"maintenance"}`),
	)

	_, err := New(baseURL, httpClient).Algorithms(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStatus)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "maintenance")
}

func TestClient_AgainstServer(t *testing.T) {
	srv := httptest.NewServer(server.New(slog.New(slog.NewTextHandler(io.Discard, nil))))
	defer srv.Close()

	c := New(srv.URL, srv.Client())

	infos, err := c.Algorithms(context.Background())
	require.NoError(t, err)
	assert.Len(t, infos, 5)

	report, err := c.Simulate(context.Background(), simulation.Request{
		Algorithm: "rr",
		Quantum:   2,
		Processes: []simulation.ProcessSpec{{ID: 1, Burst: 4}, {ID: 2, Burst: 4}},
	})
	require.NoError(t, err)

	var pids []int64
	for _, u := range report.Timeline {
		pids = append(pids, u.PID)
	}
	assert.Equal(t, []int64{1, 1, 2, 2, 1, 1, 2, 2}, pids)

	_, err = c.Simulate(context.Background(), simulation.Request{Algorithm: "lottery"})
	assert.ErrorIs(t, err, ErrStatus)
}
