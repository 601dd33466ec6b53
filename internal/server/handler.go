package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/response"
)

// textRequest is the JSON body of POST /api/v1/questions.
type textRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Count    int    `json:"count" binding:"omitempty,min=1,max=100"`
}

// GenerateFromText handles POST /api/v1/questions.
func (s *Server) GenerateFromText(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindFailed(c, err)
		return
	}

	out, err := s.pipeline.ProcessText(c.Request.Context(), req.Text, i18n.Parse(req.Language), req.Count)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.succeed(c, "text", out)
}

// GenerateFromFile handles POST /api/v1/questions/file. The multipart form
// carries the file under "file" plus optional "language" and "count".
func (s *Server) GenerateFromFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, extract.MaxFileSize+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
			return
		}
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	if err := extract.Validate(fh.Filename, fh.Size); err != nil {
		s.fail(c, err)
		return
	}

	count := 0
	if raw := c.PostForm("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 || count > 100 {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"count": "must be a number between 1 and 100"})
			return
		}
	}

	f, err := fh.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		s.fail(c, err)
		return
	}

	file := extract.File{
		Name:     fh.Filename,
		MIMEType: fh.Header.Get("Content-Type"),
		Data:     data,
	}
	out, err := s.pipeline.ProcessFile(c.Request.Context(), file, i18n.Parse(c.PostForm("language")), count)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.succeed(c, "file", out)
}

func (s *Server) bindFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	response.Fail(c, http.StatusBadRequest, response.ErrValidation)
}
