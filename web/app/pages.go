package app

import (
	"encoding/base64"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/JaimeStill/stylarch/internal/content"
	"github.com/JaimeStill/stylarch/internal/generations"
	"github.com/JaimeStill/stylarch/internal/interpretations"
	"github.com/JaimeStill/stylarch/internal/projects"
	"github.com/JaimeStill/stylarch/internal/prompts"
	"github.com/JaimeStill/stylarch/internal/styles"
	"github.com/JaimeStill/stylarch/pkg/pagination"
	"github.com/JaimeStill/stylarch/pkg/web"
)

var funcs = template.FuncMap{
	"contains": func(list []string, v string) bool { return slices.Contains(list, v) },
}

type homeData struct {
	Content *content.Content
	Styles  []styles.Style
}

type designData struct {
	Form    prompts.FormState
	Options prompts.Options
	Prompt  string
	Blank   bool
	Images  []imageView
	Error   string
}

// imageView carries a data URI already marked safe for src attributes.
// Only images decoded by the generation client reach it.
type imageView struct {
	Floor int
	Src   template.URL
}

type interpretData struct {
	Report   *interpretations.Report
	Download template.URL
	Error    string
}

type projectsData struct {
	Result *pagination.PageResult[projects.Project]
	Search string
	Type   string
	Status string
	Types  []projects.Type
	States []projects.Status
	Error  string
}

// PageQuery returns the query string for page with the current filters kept.
func (d projectsData) PageQuery(page int) template.URL {
	v := url.Values{}
	for key, value := range map[string]string{"search": d.Search, "type": d.Type, "status": d.Status} {
		if value != "" {
			v.Set(key, value)
		}
	}
	v.Set("page", strconv.Itoa(page))
	return template.URL("?" + v.Encode())
}

func (p *pages) render(w http.ResponseWriter, view web.ViewDef, status int, data any) {
	if err := p.views.Page(w, layout, view, status, data); err != nil {
		p.logger.Error("page render failed", "view", view.Template, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (p *pages) home(w http.ResponseWriter, r *http.Request) {
	p.render(w, homeView, http.StatusOK, homeData{
		Content: p.deps.Content,
		Styles:  p.deps.Styles.All(),
	})
}

func newDesignData(form prompts.FormState) designData {
	prompt := prompts.Build(form)
	return designData{
		Form:    form,
		Options: prompts.FormOptions(),
		Prompt:  prompt,
		Blank:   prompts.Blank(prompt),
	}
}

// design renders the form from query values. Links from the style catalog
// arrive as ?prompt=...; any ?type= value is accepted and ignored.
func (p *pages) design(w http.ResponseWriter, r *http.Request) {
	form := prompts.FormStateFromQuery(r.URL.Query())
	p.render(w, designView, http.StatusOK, newDesignData(form))
}

func (p *pages) generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		data := newDesignData(prompts.DefaultFormState())
		data.Error = err.Error()
		p.render(w, designView, http.StatusBadRequest, data)
		return
	}

	form := prompts.FormStateFromQuery(r.PostForm)
	data := newDesignData(form)

	result, err := p.deps.Generations.Generate(r.Context(), form)
	if err != nil {
		p.logger.Warn("generation failed", "error", err)
		data.Error = err.Error()
		p.render(w, designView, generations.MapHTTPStatus(err), data)
		return
	}

	for _, img := range result.Images {
		data.Images = append(data.Images, imageView{
			Floor: img.Floor,
			Src:   template.URL(img.DataURI()),
		})
	}
	p.render(w, designView, http.StatusOK, data)
}

func (p *pages) interpret(w http.ResponseWriter, r *http.Request) {
	img, err := interpretations.ReadUpload(w, r, p.deps.MaxUploadSize)
	if err != nil {
		p.render(w, interpretView, interpretations.MapHTTPStatus(err), interpretData{Error: err.Error()})
		return
	}

	report, err := p.deps.Interpretations.Interpret(r.Context(), img)
	if err != nil {
		p.logger.Warn("interpretation failed", "error", err)
		p.render(w, interpretView, interpretations.MapHTTPStatus(err), interpretData{Error: err.Error()})
		return
	}

	download := "data:text/markdown;base64," + base64.StdEncoding.EncodeToString([]byte(report.Markdown))
	p.render(w, interpretView, http.StatusOK, interpretData{
		Report:   report,
		Download: template.URL(download),
	})
}

func (p *pages) projects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := projectsData{
		Search: q.Get("search"),
		Type:   q.Get("type"),
		Status: q.Get("status"),
		Types:  []projects.Type{projects.TypeResidential, projects.TypeCommercial},
		States: []projects.Status{projects.StatusDraft, projects.StatusInProgress, projects.StatusCompleted},
	}

	page := pagination.PageRequestFromQuery(q, p.deps.Pagination)
	result, err := p.deps.Projects.List(r.Context(), page, projects.FiltersFromQuery(q))
	if err != nil {
		p.logger.Error("project list failed", "error", err)
		data.Error = "Projects are unavailable right now."
		p.render(w, projectsView, projects.MapHTTPStatus(err), data)
		return
	}

	data.Result = result
	p.render(w, projectsView, http.StatusOK, data)
}

func (p *pages) faqs(w http.ResponseWriter, r *http.Request) {
	p.render(w, faqsView, http.StatusOK, p.deps.Content)
}
