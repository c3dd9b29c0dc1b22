package dkssite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"

	"github.com/eringen/dkssite/catalog"
	"github.com/eringen/dkssite/content"
)

func testSite(t *testing.T) *content.Site {
	t.Helper()
	post := func(slug, category, date string) catalog.Post {
		return catalog.Post{
			Slug:     slug,
			Title:    "Title " + slug,
			Excerpt:  "Excerpt " + slug,
			Content:  "<p>Body of <em>" + slug + "</em></p>",
			Image:    "https://img.example.org/" + slug + ".jpg",
			Date:     date,
			Category: category,
			Author:   "Author " + slug,
		}
	}
	cat, err := catalog.New([]catalog.Post{
		post("s1", "Success Stories", "2024-03-01"),
		post("t1", "Training", "2024-02-20"),
		post("s2", "Success Stories", "2024-02-10"),
		post("t2", "Training", "2024-02-01"),
		post("n1", "News", "2024-01-15"),
		post("t3", "Training", "2024-01-10"),
		post("s3", "Success Stories", "2023-12-01"),
		post("t4", "Training", "2023-11-20"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return &content.Site{
		Catalog: cat,
		Programs: []content.Program{
			{ID: "incubation", Title: "Incubation", Summary: "Twelve weeks"},
			{ID: "training", Title: "Training", Summary: "Four weeks"},
		},
		Impact: content.Impact{
			Overall: content.Overall{EnterprisesTrained: 1250, JobsCreated: 890},
			YearlyData: map[string]content.YearStats{
				"2023": {EntrepreneursTrained: 200, BusinessesLaunched: 50, JobsCreated: 100},
				"2022": {EntrepreneursTrained: 100, BusinessesLaunched: 20, JobsCreated: 40},
			},
		},
		Partners:     []content.Partner{{Name: "Partner One", Logo: "/p1.png"}},
		Team:         []content.TeamMember{{Name: "Grace", Role: "Director"}},
		Testimonials: []content.Testimonial{{Quote: "Great", Author: "Mary"}},
	}
}

func newTestApp(t *testing.T, mod func(*SiteConfig)) *App {
	t.Helper()
	cfg := SiteConfig{
		Name:             "Test Site",
		URL:              "https://example.org",
		SessionSecret:    "test-secret",
		PageSize:         3,
		ContactDelay:     -1,
		ContactRateLimit: 100,
		LogLevel:         "off",
	}
	if mod != nil {
		mod(&cfg)
	}
	a := New(cfg, ViewFuncs{}, WithSource(content.StaticSource(testSite(t))))
	if err := a.Setup(); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

// browser replays cookies between requests like a user agent.
type browser struct {
	t       *testing.T
	app     *App
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, a *App) *browser {
	return &browser{t: t, app: a, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.app.Echo.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = &http.Cookie{Name: c.Name, Value: c.Value}
	}
	return rec
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (b *browser) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) csrf() string {
	c, ok := b.cookies["_csrf"]
	if !ok {
		b.t.Fatal("no _csrf cookie")
	}
	return c.Value
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	if err != nil {
		t.Fatalf("parse HTML: %v", err)
	}
	return doc
}

func storySlugs(doc *goquery.Document, sel string) []string {
	var out []string
	doc.Find(sel + " article.blog-card h3 a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		out = append(out, strings.TrimSuffix(strings.TrimPrefix(href, "/stories/"), "/"))
	})
	return out
}

func TestSetupRequiresSessionSecret(t *testing.T) {
	a := New(SiteConfig{}, ViewFuncs{}, WithSource(content.StaticSource(testSite(t))))
	if err := a.Setup(); err == nil {
		t.Fatal("Setup without SessionSecret should fail")
	}
}

func TestStaticPages(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)
	tests := []struct {
		path  string
		title string
		check string
	}{
		{"/", "Test Site", "#featured-stories"},
		{"/about/", "About Us - Test Site", ".partners"},
		{"/programs/", "Our Programs - Test Site", "#incubation"},
		{"/impact/", "Our Impact - Test Site", "table.impact-chart"},
		{"/contact/", "Contact Us - Test Site", "form.contact-form"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := b.get(tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("GET %s = %d", tt.path, rec.Code)
			}
			doc := parse(t, rec)
			if got := doc.Find("title").Text(); got != tt.title {
				t.Errorf("title = %q, want %q", got, tt.title)
			}
			if doc.Find(tt.check).Length() == 0 {
				t.Errorf("GET %s: %s not found", tt.path, tt.check)
			}
			if active, _ := doc.Find("nav a.active").Attr("href"); active != tt.path {
				t.Errorf("active nav = %q, want %q", active, tt.path)
			}
		})
	}
}

func TestHomeFeaturesRecentStories(t *testing.T) {
	a := newTestApp(t, nil)
	doc := parse(t, newBrowser(t, a).get("/"))
	want := []string{"s1", "t1", "s2"}
	if diff := cmp.Diff(want, storySlugs(doc, "#featured-stories")); diff != "" {
		t.Errorf("featured stories mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(doc.Find(".stats").Text(), "1,250+") {
		t.Errorf("stats do not show formatted count: %q", doc.Find(".stats").Text())
	}
}

func TestImpactChartRowsAscending(t *testing.T) {
	a := newTestApp(t, nil)
	doc := parse(t, newBrowser(t, a).get("/impact/"))
	var years []string
	doc.Find("table.impact-chart tbody th").Each(func(_ int, s *goquery.Selection) {
		years = append(years, strings.TrimSpace(s.Text()))
	})
	if diff := cmp.Diff([]string{"2022", "2023"}, years); diff != "" {
		t.Errorf("impact years mismatch (-want +got):\n%s", diff)
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t, nil)
	rec := newBrowser(t, a).get("/about")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("GET /about = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/about/" {
		t.Errorf("Location = %q", loc)
	}
}

func TestStoriesDefaultsToAllFirstPage(t *testing.T) {
	a := newTestApp(t, nil)
	rec := newBrowser(t, a).get("/stories/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /stories/ = %d", rec.Code)
	}
	doc := parse(t, rec)
	if diff := cmp.Diff([]string{"s1", "t1", "s2"}, storySlugs(doc, "#story-list")); diff != "" {
		t.Errorf("page 1 mismatch (-want +got):\n%s", diff)
	}

	var cats []string
	doc.Find(".categories a").Each(func(_ int, s *goquery.Selection) {
		cats = append(cats, s.Text())
	})
	if diff := cmp.Diff([]string{"All", "Success Stories", "Training", "News"}, cats); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if got := doc.Find(".categories a.active").Text(); got != "All" {
		t.Errorf("active category = %q, want All", got)
	}
	if got := doc.Find(".pagination a.current").Text(); got != "1" {
		t.Errorf("current page = %q, want 1", got)
	}
	if doc.Find(".pagination a").Length() != 4 { // 1, 2, 3, Next
		t.Errorf("pagination links = %d, want 4", doc.Find(".pagination a").Length())
	}
	if doc.Find(".pagination span.disabled").Text() != "Previous" {
		t.Error("Previous should be disabled on page 1")
	}
}

func TestStoriesCategoryAndPaging(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)

	doc := parse(t, b.get("/stories/?category=Training"))
	if diff := cmp.Diff([]string{"t1", "t2", "t3"}, storySlugs(doc, "#story-list")); diff != "" {
		t.Errorf("Training page 1 mismatch (-want +got):\n%s", diff)
	}
	if got := doc.Find(".categories a.active").Text(); got != "Training" {
		t.Errorf("active category = %q", got)
	}

	doc = parse(t, b.get("/stories/?nav=next"))
	if diff := cmp.Diff([]string{"t4"}, storySlugs(doc, "#story-list")); diff != "" {
		t.Errorf("Training page 2 mismatch (-want +got):\n%s", diff)
	}

	// Past the end stays on the last page.
	doc = parse(t, b.get("/stories/?nav=next"))
	if got := doc.Find(".pagination a.current").Text(); got != "2" {
		t.Errorf("current page after overshoot = %q, want 2", got)
	}

	// Selecting a category resets to page 1.
	doc = parse(t, b.get("/stories/?category=Success+Stories"))
	if diff := cmp.Diff([]string{"s1", "s2", "s3"}, storySlugs(doc, "#story-list")); diff != "" {
		t.Errorf("Success Stories mismatch (-want +got):\n%s", diff)
	}
	if doc.Find(".pagination").Length() != 0 {
		t.Error("single page should not render pagination")
	}
}

func TestStoriesStatePersistsInSession(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)

	b.get("/stories/?category=Training&page=2")
	doc := parse(t, b.get("/stories/"))
	if diff := cmp.Diff([]string{"t4"}, storySlugs(doc, "#story-list")); diff != "" {
		t.Errorf("restored view mismatch (-want +got):\n%s", diff)
	}

	doc = parse(t, b.get("/stories/?all=1"))
	if diff := cmp.Diff([]string{"s1", "t1", "s2"}, storySlugs(doc, "#story-list")); diff != "" {
		t.Errorf("all mismatch (-want +got):\n%s", diff)
	}

	// A fresh browser starts at All, page 1.
	doc = parse(t, newBrowser(t, a).get("/stories/"))
	if got := doc.Find(".categories a.active").Text(); got != "All" {
		t.Errorf("fresh session active category = %q", got)
	}
}

func TestStoriesPageClampAndBadInput(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)

	doc := parse(t, b.get("/stories/?all=1&page=99"))
	if got := doc.Find(".pagination a.current").Text(); got != "3" {
		t.Errorf("page 99 clamped to %q, want 3", got)
	}
	doc = parse(t, b.get("/stories/?page=-4"))
	if got := doc.Find(".pagination a.current").Text(); got != "1" {
		t.Errorf("page -4 clamped to %q, want 1", got)
	}
	b.get("/stories/?page=2")
	doc = parse(t, b.get("/stories/?page=abc"))
	if got := doc.Find(".pagination a.current").Text(); got != "2" {
		t.Errorf("non-numeric page changed state to %q, want 2", got)
	}
}

func TestStoriesEmptyCategory(t *testing.T) {
	a := newTestApp(t, nil)
	rec := newBrowser(t, a).get("/stories/?category=Nope")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d, want 200", rec.Code)
	}
	doc := parse(t, rec)
	if !strings.Contains(doc.Find(".empty").Text(), "No stories found in this category.") {
		t.Error("empty state message missing")
	}
	if doc.Find("#story-list").Length() != 0 || doc.Find(".pagination").Length() != 0 {
		t.Error("empty state should not render list or pagination")
	}
}

func TestStoriesLongUnknownCategory(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)

	rec := b.get("/stories/?category=" + url.QueryEscape(strings.Repeat("x", 4000)))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d, want 200", rec.Code)
	}
	if !strings.Contains(parse(t, rec).Find(".empty").Text(), "No stories found in this category.") {
		t.Error("empty state message missing")
	}

	// Unknown categories are not remembered.
	doc := parse(t, b.get("/stories/"))
	if diff := cmp.Diff([]string{"s1", "t1", "s2"}, storySlugs(doc, "#story-list")); diff != "" {
		t.Errorf("restored view mismatch (-want +got):\n%s", diff)
	}
}

func TestStoriesPartial(t *testing.T) {
	a := newTestApp(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/stories/?category=Training&partial=stories", nil)
	req.Header.Set("HX-Request", "true")
	rec := newBrowser(t, a).do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") || strings.Contains(body, "class=\"categories\"") {
		t.Error("partial response contains the full page")
	}
	if !strings.Contains(body, `id="story-list"`) {
		t.Error("partial response lacks the story list")
	}
}

func TestStoryDetail(t *testing.T) {
	a := newTestApp(t, nil)
	rec := newBrowser(t, a).get("/stories/t2/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d", rec.Code)
	}
	doc := parse(t, rec)
	if got := doc.Find("article.story h1").Text(); got != "Title t2" {
		t.Errorf("h1 = %q", got)
	}
	if got := doc.Find(".prose em").Text(); got != "t2" {
		t.Errorf("content not rendered as HTML: %q", got)
	}
	if diff := cmp.Diff([]string{"t1", "t3", "t4"}, storySlugs(doc, "#related")); diff != "" {
		t.Errorf("related mismatch (-want +got):\n%s", diff)
	}
	if og, _ := doc.Find(`meta[property="og:type"]`).Attr("content"); og != "article" {
		t.Errorf("og:type = %q", og)
	}
	href, _ := doc.Find(`a[aria-label="Share on LinkedIn"]`).Attr("href")
	if !strings.Contains(href, url.QueryEscape("https://example.org/stories/t2/")) {
		t.Errorf("share link = %q", href)
	}
	if !strings.Contains(doc.Find(`script[type="application/ld+json"]`).Text(), `"@type":"Article"`) {
		t.Error("article JSON-LD missing")
	}
}

func TestStoryDetailWithoutRelated(t *testing.T) {
	a := newTestApp(t, nil)
	doc := parse(t, newBrowser(t, a).get("/stories/n1/"))
	if doc.Find("#related").Length() != 0 {
		t.Error("a post alone in its category should have no related section")
	}
}

func TestUnknownStoryIs404(t *testing.T) {
	a := newTestApp(t, nil)
	rec := newBrowser(t, a).get("/stories/missing/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page Not Found") {
		t.Error("404 page not rendered")
	}
}

func TestPostsAPI(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)

	rec := b.get("/api/posts")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d", rec.Code)
	}
	var posts []catalog.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatal(err)
	}
	if len(posts) != 8 || posts[0].Slug != "s1" {
		t.Errorf("got %d posts, first %q", len(posts), posts[0].Slug)
	}

	rec = b.do(httptest.NewRequest(http.MethodPost, "/api/posts", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET" {
		t.Errorf("Allow = %q", allow)
	}
	if !strings.Contains(rec.Body.String(), `"error":"Method POST not allowed"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func postJSON(b *browser, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return b.do(req)
}

func TestContactAPI(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)

	rec := postJSON(b, `{"name": "Ada", "email": "ada@example.org", "message": "Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid POST = %d: %s", rec.Code, rec.Body.String())
	}
	var resp contactResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.ID == "" || resp.Payload.Name != "Ada" {
		t.Errorf("response = %+v", resp)
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing", `{"name": "Ada"}`, "All fields are required"},
		{"email", `{"name": "Ada", "email": "nope", "message": "Hi"}`, "Email is invalid"},
		{"malformed", `{"name":`, "Invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(b, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("POST = %d, want 400", rec.Code)
			}
			var e errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil {
				t.Fatal(err)
			}
			if e.Error != tt.want {
				t.Errorf("error = %q, want %q", e.Error, tt.want)
			}
		})
	}

	rec = b.get("/api/contact")
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") != "POST" {
		t.Errorf("GET = %d Allow=%q", rec.Code, rec.Header().Get("Allow"))
	}
}

func TestContactAPIRateLimited(t *testing.T) {
	a := newTestApp(t, func(c *SiteConfig) { c.ContactRateLimit = 2 })
	b := newBrowser(t, a)
	body := `{"name": "Ada", "email": "ada@example.org", "message": "Hello"}`
	for i := 0; i < 2; i++ {
		if rec := postJSON(b, body); rec.Code != http.StatusOK {
			t.Fatalf("POST #%d = %d", i+1, rec.Code)
		}
	}
	if rec := postJSON(b, body); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third POST = %d, want 429", rec.Code)
	}
}

func TestContactFormRequiresCSRF(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)
	rec := b.postForm("/contact/", url.Values{"name": {"Ada"}, "email": {"ada@example.org"}, "message": {"Hi"}})
	if rec.Code != http.StatusForbidden && rec.Code != http.StatusBadRequest {
		t.Fatalf("POST without token = %d, want 403 or 400", rec.Code)
	}
}

func TestContactFormSuccessFlash(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)

	doc := parse(t, b.get("/contact/"))
	token, _ := doc.Find(`input[name="_csrf"]`).Attr("value")
	if token == "" || token != b.csrf() {
		t.Fatalf("form token %q does not match cookie %q", token, b.csrf())
	}

	rec := b.postForm("/contact/", url.Values{
		"_csrf":   {token},
		"name":    {"Ada"},
		"email":   {"ada@example.org"},
		"message": {"Hello there"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("POST = %d, want 303: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/contact/" {
		t.Errorf("Location = %q", loc)
	}

	doc = parse(t, b.get("/contact/"))
	if got := doc.Find(".alert-success").Text(); !strings.Contains(got, "Thank you for your message") {
		t.Errorf("success flash = %q", got)
	}

	// The flash is shown once.
	doc = parse(t, b.get("/contact/"))
	if doc.Find(".alert-success").Length() != 0 {
		t.Error("flash shown twice")
	}
}

func TestContactFormValidationError(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)
	b.get("/contact/")

	rec := b.postForm("/contact/", url.Values{
		"_csrf":   {b.csrf()},
		"name":    {"Ada"},
		"email":   {"not-an-email"},
		"message": {"Hello"},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("POST = %d, want 422", rec.Code)
	}
	doc := parse(t, rec)
	if got := doc.Find(".alert-error").Text(); got != "Email is invalid" {
		t.Errorf("error = %q", got)
	}
	if v, _ := doc.Find("#name").Attr("value"); v != "Ada" {
		t.Errorf("name not preserved: %q", v)
	}
}

func TestContactFormMalformedBody(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)
	b.get("/contact/")

	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader("name=%zz&email=ada@example.org"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRF-Token", b.csrf())
	rec := b.do(req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Errorf("Content-Type = %q, want HTML", ct)
	}
	if got := parse(t, rec).Find(".alert-error").Text(); got != "Your message could not be read. Please try again." {
		t.Errorf("error = %q", got)
	}
}

func TestFeedAndSitemap(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)

	rec := b.get("/feed.xml")
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Header().Get("Content-Type"), "application/rss+xml") {
		t.Fatalf("feed = %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	body := rec.Body.String()
	if strings.Count(body, "<item>") != 8 {
		t.Errorf("feed items = %d, want 8", strings.Count(body, "<item>"))
	}
	if !strings.Contains(body, "<link>https://example.org/stories/s1/</link>") ||
		!strings.Contains(body, "<category>Training</category>") {
		t.Error("feed item fields missing")
	}

	rec = b.get("/sitemap.xml")
	body = rec.Body.String()
	for _, loc := range []string{"https://example.org/", "https://example.org/impact/", "https://example.org/stories/t4/"} {
		if !strings.Contains(body, "<loc>"+loc+"</loc>") {
			t.Errorf("sitemap lacks %s", loc)
		}
	}

	rec = b.get("/robots.txt")
	if !strings.Contains(rec.Body.String(), "Sitemap: https://example.org/sitemap.xml") {
		t.Errorf("robots.txt = %q", rec.Body.String())
	}
}

func TestStaticAssetsAndHeaders(t *testing.T) {
	a := newTestApp(t, nil)
	b := newBrowser(t, a)

	for _, p := range []string{"/public/site.css", "/public/stories.js", "/favicon.svg"} {
		if rec := b.get(p); rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d", p, rec.Code)
		}
	}

	rec := b.get("/")
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("home Cache-Control = %q", got)
	}
	if got := b.get("/stories/").Header().Get("Cache-Control"); got != "private, no-cache" {
		t.Errorf("stories Cache-Control = %q", got)
	}
	if got := rec.Header().Get("X-XSS-Protection"); got != "" {
		t.Errorf("X-XSS-Protection = %q, want none", got)
	}
}

func TestHSTSOnlyWithSecureCookies(t *testing.T) {
	for _, secure := range []bool{false, true} {
		a := newTestApp(t, func(c *SiteConfig) { c.CookieSecure = secure })
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXForwardedProto, "https")
		rec := newBrowser(t, a).do(req)
		got := rec.Header().Get(echo.HeaderStrictTransportSecurity)
		if secure && !strings.HasPrefix(got, "max-age=31536000") {
			t.Errorf("secure: Strict-Transport-Security = %q", got)
		}
		if !secure && got != "" {
			t.Errorf("insecure: Strict-Transport-Security = %q, want none", got)
		}
	}
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	a := newTestApp(t, nil)
	rec := newBrowser(t, a).get("/nope/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page Not Found") {
		t.Error("custom 404 page not rendered")
	}
}

func TestCustomRoutesAndViews(t *testing.T) {
	called := false
	a := New(SiteConfig{SessionSecret: "s", LogLevel: "off"}, ViewFuncs{},
		WithSource(content.StaticSource(testSite(t))),
		WithCustomRoutes(func(a *App) {
			called = true
			a.Echo.GET("/healthz/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
		}))
	if err := a.Setup(); err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	if !called {
		t.Fatal("custom routes not applied")
	}
	if rec := newBrowser(t, a).get("/healthz/"); rec.Body.String() != "ok" {
		t.Errorf("healthz = %q", rec.Body.String())
	}
}
