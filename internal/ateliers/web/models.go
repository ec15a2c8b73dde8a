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
	"golang.org/x/time/rate"

	"laptudirm.com/x/ateliers/pkg/schedule"
	"laptudirm.com/x/ateliers/pkg/tournament"
)

// Config holds the configuration for the web server.
type Config struct {
	Addr string

	// Requests allowed per second, and the burst on top of it. A
	// non-positive Rate disables the limit.
	Rate  float64
	Burst int
}

// Server serves the schedule generation API.
type Server struct {
	limiter *rate.Limiter
}

// Request is the body of every API request.
type Request struct {
	Teams    []string      `json:"teams"`
	Ateliers []string      `json:"ateliers"`
	Mode     schedule.Mode `json:"mode,omitempty"`

	// Team restricts /api/teams to the teams matching it.
	Team string `json:"team,omitempty"`
}

func (request Request) config() tournament.Config {
	return tournament.Config{
		Mode:     request.Mode,
		Teams:    request.Teams,
		Ateliers: request.Ateliers,
	}.Clean()
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
