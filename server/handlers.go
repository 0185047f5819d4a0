package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Thezuko82/soltrans"
)

type pageData struct {
	Models []soltrans.Model
	Model  soltrans.Model
	Par    soltrans.Parameter
	Run    *run
	Err    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, pageData{
		Models: soltrans.Models(),
		Model:  soltrans.Basic,
		Par:    soltrans.DefaultParameter(),
	})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	pd := pageData{Models: soltrans.Models(), Par: soltrans.DefaultParameter()}

	mdl, err := soltrans.ParseModel(r.FormValue("model"))
	if err != nil {
		pd.Model = soltrans.Basic
		pd.Err = err.Error()
		s.render(w, http.StatusBadRequest, pd)
		return
	}
	pd.Model = mdl

	par := soltrans.Parameter{
		Nstep:    formInt(r, "steps", pd.Par.Nstep),
		Conc0:    formFloat(r, "conc0", pd.Par.Conc0),
		Gradient: formFloat(r, "gradient", pd.Par.Gradient),
		Kdecay:   formFloat(r, "kdecay", pd.Par.Kdecay),
		Kd:       formFloat(r, "kd", pd.Par.Kd),
	}
	pd.Par = par
	if err := par.Check(); err != nil {
		pd.Err = err.Error()
		s.render(w, http.StatusBadRequest, pd)
		return
	}

	t0 := time.Now()
	ev := soltrans.Evaluator{Mdl: mdl, Par: par}
	out := ev.Evaluate()
	took := time.Since(t0)

	rn := &run{ID: uuid.NewString(), Mdl: mdl, Par: par, Out: out, At: t0}
	s.store.put(rn)
	s.mtr.runs.WithLabelValues(string(mdl)).Inc()
	s.mtr.runDur.Observe(took.Seconds())
	s.lgr.Info("run complete",
		zap.String("run", rn.ID),
		zap.String("model", string(mdl)),
		zap.Int("nstep", par.Nstep),
		zap.Duration("took", took))

	pd.Run = rn
	s.render(w, http.StatusOK, pd)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	rn, ok := s.store.get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := rn.Out.DrawChart(w); err != nil {
		s.lgr.Error("chart render failed", zap.String("run", rn.ID), zap.Error(err))
	}
}

func (s *Server) handleCSV(w http.ResponseWriter, r *http.Request) {
	rn, ok := s.store.get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="solute_transport_results.csv"`)
	w.Write(rn.Out.CSV())
}

func (s *Server) render(w http.ResponseWriter, status int, pd pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.Execute(w, pd); err != nil {
		s.lgr.Error("template render failed", zap.Error(err))
	}
}

func formInt(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.FormValue(key)); err == nil {
		return v
	}
	return def
}

func formFloat(r *http.Request, key string, def float64) float64 {
	if v, err := strconv.ParseFloat(r.FormValue(key), 64); err == nil {
		return v
	}
	return def
}
