package schoolapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/grade"
	"github.com/trezcool/rapor/core/roster"
)

const (
	teacherGradesPath = "/api/nilai/guru/me"
	saveGradePath     = "/api/nilai/"
	studentGradesPath = "/api/nilai/siswa/me"
	studentsPath      = "/api/siswa/"
	classesPath       = "/api/kelas/"
)

// Client talks to the school REST API on behalf of the caller whose token it forwards.
// It never retries.
type Client struct {
	host string
	rest *rest.Client
}

var (
	_ grade.Backend  = (*Client)(nil)
	_ roster.Backend = (*Client)(nil)
)

func NewClient(conf *core.Config) *Client {
	return &Client{
		host: strings.TrimRight(conf.School.BaseURL, "/"),
		rest: &rest.Client{HTTPClient: &http.Client{Timeout: conf.School.Timeout}},
	}
}

func (c *Client) request(method rest.Method, path, token string, body interface{}) (rest.Request, error) {
	req := rest.Request{
		Method:  method,
		BaseURL: c.host + path,
		Headers: map[string]string{
			"Accept":        "application/json",
			"Authorization": "Bearer " + token,
		},
	}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return rest.Request{}, errors.Wrap(err, "encoding request body")
		}
		req.Headers["Content-Type"] = "application/json"
		req.Body = data
	}
	return req, nil
}

// send performs the request and decodes a 2xx JSON response into `dst`, if not nil.
// Failures are returned as *grade.BackendError.
func (c *Client) send(ctx context.Context, method rest.Method, path, token string, body, dst interface{}) error {
	req, err := c.request(method, path, token, body)
	if err != nil {
		return err
	}

	res, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		return &grade.BackendError{Err: errors.Wrapf(err, "%s %s", method, path)}
	}
	if res.StatusCode >= http.StatusBadRequest {
		return &grade.BackendError{Status: res.StatusCode, Message: message(res.Body)}
	}

	if dst != nil {
		if err := json.Unmarshal([]byte(res.Body), dst); err != nil {
			return &grade.BackendError{Status: res.StatusCode, Err: errors.Wrapf(err, "decoding %s response", path)}
		}
	}
	return nil
}

func (c *Client) TeachingAssignments(ctx context.Context, token string) ([]grade.TeachingAssignment, error) {
	var mas []mapelDiampu
	if err := c.send(ctx, rest.Get, teacherGradesPath, token, nil, &mas); err != nil {
		return nil, err
	}
	tas := make([]grade.TeachingAssignment, 0, len(mas))
	for _, ma := range mas {
		tas = append(tas, ma.assignment())
	}
	return tas, nil
}

// SaveGrade creates or updates the grade; the response body is ignored.
func (c *Client) SaveGrade(ctx context.Context, token string, sg grade.SaveGrade) error {
	return c.send(ctx, rest.Post, saveGradePath, token, toNilaiCreate(sg), nil)
}

func (c *Client) StudentGrades(ctx context.Context, token string) ([]grade.SubjectGrade, error) {
	var ns []nilai
	if err := c.send(ctx, rest.Get, studentGradesPath, token, nil, &ns); err != nil {
		return nil, err
	}
	grades := make([]grade.SubjectGrade, 0, len(ns))
	for _, n := range ns {
		grades = append(grades, n.subjectGrade())
	}
	return grades, nil
}

func (c *Client) Students(ctx context.Context, token string) ([]roster.Student, error) {
	var ss []siswa
	if err := c.send(ctx, rest.Get, studentsPath, token, nil, &ss); err != nil {
		return nil, err
	}
	students := make([]roster.Student, 0, len(ss))
	for _, s := range ss {
		students = append(students, s.student())
	}
	return students, nil
}

func (c *Client) Classes(ctx context.Context, token string) ([]roster.Class, error) {
	var ks []kelas
	if err := c.send(ctx, rest.Get, classesPath, token, nil, &ks); err != nil {
		return nil, err
	}
	classes := make([]roster.Class, 0, len(ks))
	for _, k := range ks {
		classes = append(classes, k.class())
	}
	return classes, nil
}
