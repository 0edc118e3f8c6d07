package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"readum/internal/domain"
	"readum/internal/dto"
	"readum/internal/logger"
	"readum/internal/middleware"
	"readum/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	countUpDuration = time.Second
	countUpInterval = 30 * time.Millisecond
)

// ResultHandler serves persisted results as JSON and as a shareable page.
type ResultHandler struct {
	service service.ResultService
	page    *template.Template
}

// NewResultHandler creates a new ResultHandler instance
func NewResultHandler(service service.ResultService) *ResultHandler {
	return &ResultHandler{
		service: service,
		page:    template.Must(template.New("result").Parse(resultPageTemplate)),
	}
}

// GetResult godoc
// @Summary Get a shared result
// @Description Returns a persisted attempt with its recomputed score
// @Tags result
// @Produce json
// @Param uuid path string true "Result ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /results/{uuid} [get]
func (h *ResultHandler) GetResult(c *fiber.Ctx) error {
	resp, err := h.service.GetResult(c.UserContext(), c.Params("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

type resultPageData struct {
	Found      bool
	Title      string
	Status     int
	Message    string
	Result     *dto.ResultResponse
	Rows       []resultRow
	FramesJSON string
	IntervalMS int64
}

type resultRow struct {
	Number      int
	Content     string
	Options     []optionRow
	Correct     bool
	Explanation string
}

type optionRow struct {
	Letter   domain.Letter
	Text     string
	Selected bool
	Answer   bool
}

// ResultPage renders the public result page. Unknown results get a not-found page.
func (h *ResultHandler) ResultPage(c *fiber.Ctx) error {
	resp, err := h.service.GetResult(c.UserContext(), c.Params("uuid"))
	if err != nil {
		status := http.StatusInternalServerError
		var derr *domain.DomainError
		if errors.As(err, &derr) {
			status = middleware.MapDomainErrorToHTTPStatus(derr)
		}
		data := resultPageData{Status: status, Title: "Something went wrong", Message: "The result could not be loaded. Please try again later."}
		if status == http.StatusNotFound {
			data.Title = "Result not found"
			data.Message = "This result does not exist or is no longer available."
		} else {
			logger.Get().Warn("Failed to render result page", zap.String("uuid", c.Params("uuid")), zap.Error(err))
		}
		return h.render(c, status, data)
	}

	frames, _ := json.Marshal(domain.CountUpFrames(resp.Score.Percentage, countUpDuration, countUpInterval))
	return h.render(c, http.StatusOK, resultPageData{
		Found:      true,
		Title:      "Quiz result",
		Status:     http.StatusOK,
		Result:     resp,
		Rows:       buildResultRows(resp),
		FramesJSON: string(frames),
		IntervalMS: countUpInterval.Milliseconds(),
	})
}

func (h *ResultHandler) render(c *fiber.Ctx, status int, data resultPageData) error {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		return domain.NewInternalError("failed to render result page", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

func buildResultRows(resp *dto.ResultResponse) []resultRow {
	rows := make([]resultRow, 0, len(resp.Questions))
	for i, q := range resp.Questions {
		var selected domain.Letter
		if i < len(resp.Selected) {
			selected = resp.Selected[i]
		}
		row := resultRow{
			Number:      i + 1,
			Content:     q.Content,
			Correct:     selected != "" && selected == q.Answer,
			Explanation: q.Explanation,
		}
		for _, l := range domain.Letters {
			row.Options = append(row.Options, optionRow{
				Letter:   l,
				Text:     q.Options.Get(l),
				Selected: l == selected,
				Answer:   l == q.Answer,
			})
		}
		rows = append(rows, row)
	}
	return rows
}
