package summary

import (
	"net/http"

	sumUC "summarizer/internal/usecase/summary"
)

// Register registers the summary routes on mux.
// Every route is served with and without the trailing slash.
func Register(mux *http.ServeMux, svc *sumUC.Service) {
	list := ListHandler{svc}
	create := CreateHandler{svc}
	get := GetHandler{svc}
	update := UpdateHandler{svc}
	del := DeleteHandler{svc}

	mux.Handle("GET    /summaries/{$}", list)
	mux.Handle("GET    /summaries", list)
	mux.Handle("POST   /summaries/{$}", create)
	mux.Handle("POST   /summaries", create)

	mux.Handle("GET    /summaries/{id}/{$}", get)
	mux.Handle("GET    /summaries/{id}", get)
	mux.Handle("PUT    /summaries/{id}/{$}", update)
	mux.Handle("PUT    /summaries/{id}", update)
	mux.Handle("DELETE /summaries/{id}/{$}", del)
	mux.Handle("DELETE /summaries/{id}", del)
}
