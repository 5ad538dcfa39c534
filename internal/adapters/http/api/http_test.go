package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/podium-rank/podium/internal/adapters/http/api"
	service "github.com/podium-rank/podium/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

const statesCSV = `Aff,Neg,Win,Aff Points,Neg Points
Team X,Team Y,Aff,Alice 28.5 Bob 27.0,Carol 26 Dave 25
Team Y,Team X,Neg,Carol 27 Dave 26,Alice 28 Bob 27
`

func newTestServer() *httptest.Server {
	svc := service.New()
	apiServer := api.NewServer(svc, svc, 100, 1<<20)
	mux := http.NewServeMux()
	apiServer.Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func upload(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "text/csv", strings.NewReader(body))
	So(err, ShouldBeNil)
	return resp
}

func TestAPI(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When checking health", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the service reports ok", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When uploading a tournament CSV", func() {
			resp := upload(t, srv, "/tournaments?filename=states.csv", statesCSV)
			defer resp.Body.Close()

			Convey("Then the tournament is registered", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusCreated)
				var body struct {
					Name   string `json:"name"`
					Rows   int    `json:"rows"`
					Status string `json:"status"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Name, ShouldEqual, "states")
				So(body.Rows, ShouldEqual, 2)
				So(body.Status, ShouldEqual, "registered")
			})

			Convey("And listing tournaments includes it", func() {
				listResp, err := http.Get(srv.URL + "/tournaments")
				So(err, ShouldBeNil)
				defer listResp.Body.Close()
				var records []map[string]any
				So(json.NewDecoder(listResp.Body).Decode(&records), ShouldBeNil)
				So(records, ShouldHaveLength, 1)
			})

			Convey("And re-uploading the same bytes conflicts", func() {
				dup := upload(t, srv, "/tournaments?filename=states.csv", statesCSV)
				defer dup.Body.Close()
				So(dup.StatusCode, ShouldEqual, http.StatusConflict)
			})

			Convey("And speaker rankings are served", func() {
				rankResp, err := http.Get(srv.URL + "/rankings?scope=global&kind=speakers")
				So(err, ShouldBeNil)
				defer rankResp.Body.Close()
				So(rankResp.StatusCode, ShouldEqual, http.StatusOK)
				var body struct {
					Kind     string `json:"kind"`
					Speakers []struct {
						Name string  `json:"name"`
						Rank int     `json:"rank"`
						Wins int     `json:"wins"`
						Win  float64 `json:"win_rate"`
					} `json:"speakers"`
				}
				So(json.NewDecoder(rankResp.Body).Decode(&body), ShouldBeNil)
				So(body.Kind, ShouldEqual, "speakers")
				So(body.Speakers, ShouldNotBeEmpty)
				So(body.Speakers[0].Name, ShouldEqual, "Alice")
				So(body.Speakers[0].Rank, ShouldEqual, 1)
			})

			Convey("And per-tournament team rankings are served", func() {
				rankResp, err := http.Get(srv.URL + "/rankings?scope=tournament&name=states&kind=teams")
				So(err, ShouldBeNil)
				defer rankResp.Body.Close()
				So(rankResp.StatusCode, ShouldEqual, http.StatusOK)
			})

			Convey("And an unknown tournament is a 404", func() {
				rankResp, err := http.Get(srv.URL + "/rankings?scope=tournament&name=nowhere&kind=teams")
				So(err, ShouldBeNil)
				defer rankResp.Body.Close()
				So(rankResp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When requesting rankings with a bad kind", func() {
			resp, err := http.Get(srv.URL + "/rankings?kind=coaches")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the request is rejected", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When uploading an empty body", func() {
			resp := upload(t, srv, "/tournaments?name=empty", "")
			defer resp.Body.Close()

			Convey("Then the request is rejected", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When fetching skips with nothing registered", func() {
			resp, err := http.Get(srv.URL + "/skips")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then an empty list is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body struct {
					Skips []any `json:"skips"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Skips, ShouldBeEmpty)
			})
		})

		Convey("When fetching stats", func() {
			resp, err := http.Get(srv.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then coarse counters are returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var stats map[string]any
				So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
				So(stats, ShouldContainKey, "tournaments")
			})
		})
	})
}
