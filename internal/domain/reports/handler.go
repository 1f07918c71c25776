package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/", listReportsHandler(svc))
		rr.Get("/summary", summaryHandler(svc))
		rr.Get("/{reportID}", getReportHandler(svc))
		rr.Get("/{reportID}/export", exportReportHandler(svc))
	})
}

// reportResponse agrega los totales que la UI muestra en cada tarjeta.
type reportResponse struct {
	Report
	Days   int `json:"days"`
	Nights int `json:"nights"`
}

func toReportResponse(r Report) reportResponse {
	return reportResponse{Report: r, Days: r.Days(), Nights: r.Nights()}
}

// listReportsHandler godoc
// @Summary Listar reportes de viaje
// @Tags reports
// @Produce json
// @Success 200 {array} reportResponse
// @Router /reports [get]
func listReportsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.List(r.Context())
		out := make([]reportResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toReportResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// summaryHandler godoc
// @Summary Resumen de todos los viajes
// @Tags reports
// @Produce json
// @Success 200 {object} Summary
// @Router /reports/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Summary(r.Context()))
	}
}

// getReportHandler godoc
// @Summary Ver reporte
// @Tags reports
// @Produce json
// @Param reportID path string true "Report ID"
// @Success 200 {object} reportResponse
// @Failure 404 {string} string
// @Router /reports/{reportID} [get]
func getReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.Get(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

// exportReportHandler godoc
// @Summary Exportar reporte a Excel
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param reportID path string true "Report ID"
// @Success 200 {file} file
// @Failure 404 {string} string
// @Router /reports/{reportID}/export [get]
func exportReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, filename, err := svc.Export(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", ContentTypeXLSX)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
