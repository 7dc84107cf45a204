package httputils

import (
	"encoding/json"
	"net/http"

	"boscoin.io/sebak-gov/lib/errors"
)

// Problem is the error response of RFC 7807.
type Problem struct {
	// Type is the URI reference which identifies the problem type;
	// "about:blank" when it is not given.
	Type string `json:"type"`

	// Title is the short summary of the problem type.
	Title string `json:"title"`

	Status int `json:"status,omitempty"`

	// Detail is the explanation of this occurrence of the problem.
	Detail string `json:"detail,omitempty"`

	Instance string `json:"instance,omitempty"`

	// Data is the `errors.Error.Data` of the governance rejection.
	Data map[string]interface{} `json:"data,omitempty"`
}

const ProblemTypePrefix = "https://boscoin.io/sebak-gov/problems/"

var (
	ProblemDefaultBadRequest          = NewStatusProblem(http.StatusBadRequest)
	ProblemDefaultNotFound            = NewStatusProblem(http.StatusNotFound)
	ProblemDefaultInternalServerError = NewStatusProblem(http.StatusInternalServerError)
)

func NewStatusProblem(status int) Problem {
	return Problem{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: http.StatusText(status),
	}
}

func NewDetailedStatusProblem(status int, detail string) Problem {
	p := NewStatusProblem(status)
	p.Detail = detail
	return p
}

// NewErrorProblem converts err into `Problem`; `*errors.Error` keeps its
// code in the type.
func NewErrorProblem(err error, status int) Problem {
	e, ok := err.(*errors.Error)
	if !ok {
		return NewDetailedStatusProblem(status, err.Error())
	}

	p := Problem{
		Type:   ProblemTypePrefix + codeString(e.Code),
		Title:  e.Message,
		Status: status,
	}
	if len(e.Data) > 0 {
		p.Data = e.Data
	}

	return p
}

func (p Problem) SetInstance(instance string) Problem {
	p.Instance = instance
	return p
}

func (p Problem) SetDetail(detail string) Problem {
	p.Detail = detail
	return p
}

func (p Problem) Serialize() ([]byte, error) {
	return json.Marshal(p)
}
