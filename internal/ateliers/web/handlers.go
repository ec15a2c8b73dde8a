// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"laptudirm.com/x/ateliers/pkg/export"
	"laptudirm.com/x/ateliers/pkg/publish"
	"laptudirm.com/x/ateliers/pkg/schedule"
	"laptudirm.com/x/ateliers/pkg/tournament"
)

// Names of the exported files.
const (
	CSVFilename      = "schedule.csv"
	WorkbookFilename = "team_schedules.xlsx"
)

// GenerateHandler responds with the schedule as a list of row records.
func (s *Server) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	sched, ok := s.generate(w, r, nil)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, export.NewTable(sched).Records())
}

// TeamsHandler responds with the fixtures of every team, or of the teams
// matching the request's team field.
func (s *Server) TeamsHandler(w http.ResponseWriter, r *http.Request) {
	var request Request
	sched, ok := s.generate(w, r, &request)
	if !ok {
		return
	}

	views := sched.Views()
	if request.Team != "" {
		names := make([]string, len(views))
		for i, view := range views {
			names[i] = view.Team.Name
		}

		found := tournament.FindTeams(names, request.Team)
		if len(found) == 0 {
			writeError(w, r, http.StatusNotFound, fmt.Sprintf("no team matches %q", request.Team))
			return
		}

		var filtered []schedule.TeamView
		for _, view := range views {
			for _, name := range found {
				if view.Team.Name == name {
					filtered = append(filtered, view)
					break
				}
			}
		}
		views = filtered
	}

	writeJSON(w, r, http.StatusOK, export.TeamViews(views))
}

// ExportCSVHandler responds with the schedule as a CSV attachment.
func (s *Server) ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	sched, ok := s.generate(w, r, nil)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, sched); err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeAttachment(w, CSVFilename, publish.ContentTypeCSV, buf.Bytes())
}

// ExportWorkbookHandler responds with a spreadsheet holding one sheet per
// team as an attachment.
func (s *Server) ExportWorkbookHandler(w http.ResponseWriter, r *http.Request) {
	sched, ok := s.generate(w, r, nil)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, sched.Views()); err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeAttachment(w, WorkbookFilename, publish.ContentTypeXLSX, buf.Bytes())
}

// generate decodes the request into dst, or a throwaway Request if dst is
// nil, and builds its schedule. An error response has been written if ok
// is false.
func (s *Server) generate(w http.ResponseWriter, r *http.Request, dst *Request) (sched *schedule.Schedule, ok bool) {
	if dst == nil {
		dst = new(Request)
	}

	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}

	config := dst.config()
	if len(config.Teams) == 0 || len(config.Ateliers) == 0 {
		writeError(w, r, http.StatusBadRequest, "team and atelier lists must not be empty")
		return nil, false
	}

	sched, err := tournament.Generate(config)
	switch {
	case errors.Is(err, schedule.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "generate schedule: "+err.Error())
		return nil, false
	}

	return sched, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", publish.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		requestLogger(r).WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	entry := requestLogger(r).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error(detail)
	} else {
		entry.Debug(detail)
	}

	writeJSON(w, r, status, ErrorResponse{Detail: detail})
}

func writeAttachment(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

