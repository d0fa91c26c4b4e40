package web

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"vidfinder/finder"
	"vidfinder/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// QueryRunner runs one query end to end. Satisfied by *finder.Finder.
type QueryRunner interface {
	Run(ctx context.Context, cfg finder.QueryConfig) (*models.Recommendation, error)
}

// Server renders the search form and runs submitted queries. Each request is
// handled independently; the runner is the only shared state and is read-only
// after construction.
type Server struct {
	runner   QueryRunner
	defaults finder.QueryConfig
	engine   *gin.Engine
}

// formData feeds the single page template for both the empty form and the
// re-rendered result or error states.
type formData struct {
	Query            string
	Days             int
	DurationCategory string
	Categories       []string
	Error            string
	Result           *models.Recommendation
}

var durationCategories = []string{"any", "short", "medium", "long"}

func NewServer(runner QueryRunner, defaults finder.QueryConfig) *Server {
	engine := gin.Default()
	engine.Use(cors.Default())
	engine.SetHTMLTemplate(template.Must(template.New("form").Parse(formTemplate)))

	s := &Server{
		runner:   runner,
		defaults: defaults,
		engine:   engine,
	}

	engine.GET("/", s.showForm)
	engine.POST("/", s.handleSearch)
	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return s
}

// Handler exposes the router so the caller can mount it on an http.Server
// with its own shutdown handling.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) showForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form", formData{
		Days:             s.defaults.LookbackDays,
		DurationCategory: s.defaults.DurationCategory,
		Categories:       durationCategories,
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	data := formData{
		Query:            c.PostForm("query"),
		DurationCategory: c.PostForm("video_duration"),
		Categories:       durationCategories,
	}

	days, err := strconv.Atoi(c.PostForm("days"))
	if err != nil || days < 1 {
		days = s.defaults.LookbackDays
	}
	data.Days = days

	if !validCategory(data.DurationCategory) {
		data.DurationCategory = s.defaults.DurationCategory
	}

	if data.Query == "" {
		data.Error = "Please enter a search query."
		c.HTML(http.StatusOK, "form", data)
		return
	}

	result, err := s.runner.Run(c.Request.Context(), finder.QueryConfig{
		Query:            data.Query,
		LookbackDays:     days,
		DurationCategory: data.DurationCategory,
	})
	if err != nil {
		log.Printf("Query %q failed: %v", data.Query, err)
		data.Error = err.Error()
		c.HTML(http.StatusOK, "form", data)
		return
	}

	data.Result = result
	c.HTML(http.StatusOK, "form", data)
}

func validCategory(category string) bool {
	for _, c := range durationCategories {
		if c == category {
			return true
		}
	}
	return false
}
