package dto

import (
	"fmt"
	"strings"
	"time"

	"tzconv/internal/domains/conversion/model"
	"tzconv/shared/constant"
)

type ConvertRequest struct {
	Timestamp    string
	Zone         string
	HasTimestamp bool
	HasZone      bool
}

// FromArgs maps the positional arguments `[timestamp [zone|default]]` onto a request.
func FromArgs(args []string) ConvertRequest {
	var req ConvertRequest

	if len(args) > 0 {
		req.Timestamp = args[0]
		req.HasTimestamp = true
	}

	if len(args) > 1 {
		req.Zone = args[1]
		req.HasZone = true
	}

	return req
}

func (r ConvertRequest) Mode() model.Mode {
	switch {
	case !r.HasTimestamp:
		return model.ModeNow
	case !r.HasZone:
		return model.ModeInteractive
	case strings.EqualFold(r.Zone, constant.DefaultKeyword):
		return model.ModeDefaults
	default:
		return model.ModeSpecific
	}
}

type ConvertResponse struct {
	Mode    model.Mode
	Instant time.Time
	Results []model.Result
	Note    string
}

// Failed returns the number of zones that could not be formatted.
func (r ConvertResponse) Failed() int {
	failed := 0

	for _, res := range r.Results {
		if !res.OK() {
			failed++
		}
	}

	return failed
}

func SubstitutionNote(raw, resolved string) string {
	return fmt.Sprintf("interpreting %q as %s", raw, resolved)
}
