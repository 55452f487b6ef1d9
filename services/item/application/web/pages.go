// Package web serves the budget page: the full HTML document, the table
// fragment the page script re-fetches, and no-script form fallbacks.
package web

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orcamento/pkg/errhttp"
	"github.com/ghuser/orcamento/pkg/logger"
	"github.com/ghuser/orcamento/services/item/application/render"
	appsvcs "github.com/ghuser/orcamento/services/item/application/services"
	itemdomain "github.com/ghuser/orcamento/services/item/domain"
)

// User-facing messages shown on the page.
const (
	loadErrorMessage   = "Não foi possível carregar os itens. Verifique se o servidor está rodando."
	createErrorMessage = "Não foi possível adicionar o item."
	deleteErrorMessage = "Não foi possível deletar o item."
	notFoundMessage    = "Item não encontrado."
	invalidIDMessage   = "Identificador de item inválido."
)

var templates = template.Must(template.ParseFS(TemplatesFS, "templates/*.html"))

// formValues echoes what the user typed back into the form after a rejection.
type formValues struct {
	Name      string
	Quantity  string
	UnitValue string
}

type pageData struct {
	Table     render.Table
	LoadError string
	FormError string
	Form      formValues
}

// Pages renders the HTML side of the item service.
type Pages struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPages returns Pages backed by the given services.
func NewPages(svc *appsvcs.Services, log logger.Logger) *Pages {
	return &Pages{svc: svc, log: log}
}

// Routes registers the page, fragment, form fallback, and static routes on r.
func (p *Pages) Routes(r chi.Router) {
	static, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic(err) // embedded directory is fixed at build time
	}

	r.Get("/", p.index)
	r.Get("/partials/items", p.itemsTable)
	r.Post("/items/form", p.addItem)
	r.Post("/items/{id}/delete", p.deleteItem)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
}

func (p *Pages) index(w http.ResponseWriter, r *http.Request) {
	p.renderPage(w, r, http.StatusOK, pageData{Form: formValues{Quantity: "1"}})
}

func (p *Pages) itemsTable(w http.ResponseWriter, r *http.Request) {
	items, err := p.svc.Item.List(r.Context())
	if err != nil {
		p.log.ErrorContext(r.Context(), "list items for fragment failed", "error", err)
		errhttp.WriteError(w, err, errhttp.Fallback{Status: http.StatusInternalServerError, Message: "Error fetching items"})
		return
	}
	p.execute(w, r, http.StatusOK, "items_table", render.BuildTable(items))
}

func (p *Pages) addItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		p.renderPage(w, r, http.StatusBadRequest, pageData{FormError: render.FormErrorMessage})
		return
	}
	values := formValues{
		Name:      r.PostForm.Get("name"),
		Quantity:  r.PostForm.Get("quantity"),
		UnitValue: r.PostForm.Get("unitValue"),
	}

	form, err := render.ParseItemForm(values.Name, values.Quantity, values.UnitValue)
	if err != nil {
		var ferr *render.FormError
		msg := createErrorMessage
		if errors.As(err, &ferr) {
			msg = ferr.Message
		}
		p.renderPage(w, r, http.StatusBadRequest, pageData{FormError: msg, Form: values})
		return
	}

	if _, err := p.svc.Item.Create(r.Context(), form.Name, float64(form.Quantity), form.UnitValue); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, itemdomain.ErrItemValidation) {
			status = http.StatusBadRequest
		}
		p.log.WarnContext(r.Context(), "create item from form failed", "error", err)
		p.renderPage(w, r, status, pageData{FormError: createErrorMessage + " " + err.Error(), Form: values})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (p *Pages) deleteItem(w http.ResponseWriter, r *http.Request) {
	_, err := p.svc.Item.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, itemdomain.ErrInvalidItemID):
		p.renderPage(w, r, http.StatusBadRequest, pageData{FormError: invalidIDMessage, Form: formValues{Quantity: "1"}})
	case errors.Is(err, itemdomain.ErrItemNotFound):
		p.renderPage(w, r, http.StatusNotFound, pageData{FormError: notFoundMessage, Form: formValues{Quantity: "1"}})
	default:
		p.log.ErrorContext(r.Context(), "delete item from form failed", "error", err)
		p.renderPage(w, r, http.StatusInternalServerError, pageData{FormError: deleteErrorMessage, Form: formValues{Quantity: "1"}})
	}
}

// renderPage fills data.Table from the store and writes the full page. A list
// failure still renders the page, empty, with the load-error marker set.
func (p *Pages) renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	items, err := p.svc.Item.List(r.Context())
	if err != nil {
		p.log.ErrorContext(r.Context(), "list items for page failed", "error", err)
		data.LoadError = loadErrorMessage + "\nDetalhe: " + err.Error()
	}
	data.Table = render.BuildTable(items)
	p.execute(w, r, status, "index", data)
}

func (p *Pages) execute(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		p.log.ErrorContext(r.Context(), "template render failed", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
