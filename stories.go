package dkssite

import (
	"slices"
	"strconv"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/eringen/dkssite/catalog"
	"github.com/eringen/dkssite/views"
)

// Session keys holding the stories View State.
const (
	keyStoriesAll      = "stories_all"
	keyStoriesCategory = "stories_category"
	keyStoriesPage     = "stories_page"
)

// handleStories renders the story listing. The filter and page persist in
// the session, so returning to /stories/ restores the last view. Query
// parameters apply in order: all or category, then page, then nav.
func (a *App) handleStories(c echo.Context) error {
	site := a.Content.Site()
	view := catalog.NewView(site.Catalog, a.Config.PageSize)

	sess, err := getSession(c)
	if err != nil {
		return err
	}
	view.Restore(loadViewState(sess))
	applyViewActions(c, view)
	saveViewState(sess, view.State(), site.Catalog.Names())
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("stories: save view state: %v", err)
	}

	page := views.StoriesPage{
		Chrome:     a.chrome(c, "/stories/", "Stories", "Inspiring stories of transformation and success from our program participants."),
		Page:       view.Current(),
		Categories: site.Catalog.Categories(),
		Recent:     site.Catalog.Recent(recentStories),
	}
	c.Response().Header().Add(echo.HeaderVary, "HX-Request")
	if isHTMX(c) && c.QueryParam("partial") == "stories" {
		return Render(c, a.Views.StoriesSection(page))
	}
	return Render(c, a.Views.Stories(page))
}

func applyViewActions(c echo.Context, view *catalog.View) {
	q := c.QueryParams()
	switch {
	case q.Has("all"):
		view.SelectCategory(catalog.All)
	case q.Has("category"):
		view.SelectCategory(catalog.Category(q.Get("category")))
	}
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			view.GoToPage(n)
		}
	}
	switch q.Get("nav") {
	case "next":
		view.NextPage()
	case "prev":
		view.PrevPage()
	}
}

func loadViewState(sess *sessions.Session) catalog.State {
	st := catalog.State{Filter: catalog.All, Page: 1}
	if all, ok := sess.Values[keyStoriesAll].(bool); ok && !all {
		if name, ok := sess.Values[keyStoriesCategory].(string); ok {
			st.Filter = catalog.Category(name)
		}
	}
	if n, ok := sess.Values[keyStoriesPage].(int); ok {
		st.Page = n
	}
	return st
}

// saveViewState stores st in sess. A category missing from known is shown
// for the current request but remembered as All.
func saveViewState(sess *sessions.Session, st catalog.State, known []string) {
	if !st.Filter.IsAll() && !slices.Contains(known, st.Filter.Name()) {
		st = catalog.State{Filter: catalog.All, Page: 1}
	}
	sess.Values[keyStoriesAll] = st.Filter.IsAll()
	sess.Values[keyStoriesCategory] = st.Filter.Name()
	sess.Values[keyStoriesPage] = st.Page
}
