package web

import (
	"html/template"
	"net/http"
)

var (
	landingTmpl = template.Must(template.New("landing").Parse(landingHTML))
	detailTmpl  = template.Must(template.New("detail").Parse(detailHTML))
)

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error("template render failed", "template", tmpl.Name(), "error", err)
	}
}

const landingHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Getaway — Find Your Perfect Getaway</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; color: #1f2937; }
    .nav { display: flex; justify-content: space-between; align-items: center; padding: 16px 32px; border-bottom: 1px solid #e5e7eb; }
    .nav a.logo { color: #f43f5e; font-size: 22px; font-weight: 700; text-decoration: none; }
    .hero { height: 420px; background: linear-gradient(to right, #a855f7, #ec4899); display: flex; flex-direction: column; align-items: center; justify-content: center; color: #fff; padding: 0 16px; }
    .hero h1 { font-size: 42px; margin-bottom: 24px; text-align: center; }
    .hero form { width: 100%; max-width: 640px; background: #fff; border-radius: 9999px; display: flex; padding: 8px; }
    .hero input { flex: 1; border: none; outline: none; padding: 8px 16px; font-size: 16px; color: #1f2937; border-radius: 9999px; }
    .hero button { background: #f43f5e; color: #fff; border: none; padding: 8px 24px; border-radius: 9999px; font-size: 16px; cursor: pointer; }
    .content { max-width: 1120px; margin: 0 auto; padding: 48px 16px; }
    .content h2 { font-size: 24px; margin-bottom: 32px; }
    .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 32px; }
    .card { border-radius: 16px; overflow: hidden; box-shadow: 0 1px 6px rgba(0,0,0,0.12); text-decoration: none; color: inherit; display: block; }
    .card img { width: 100%; height: 220px; object-fit: cover; }
    .card .body { padding: 16px; }
    .card .title-row { display: flex; justify-content: space-between; margin-bottom: 4px; }
    .card .title { font-weight: 600; }
    .card .rating::before { content: "\2605 "; color: #facc15; }
    .card .location { color: #6b7280; font-size: 14px; margin-bottom: 8px; }
    .card .price span { font-weight: 700; }
  </style>
</head>
<body>
  <nav class="nav"><a class="logo" href="/">getaway</a></nav>
  <div class="hero">
    <h1>Find Your Perfect Getaway</h1>
    <form action="/" method="get">
      <input type="text" name="q" placeholder="Search destinations...">
      <button type="submit">Search</button>
    </form>
  </div>
  <div class="content">
    <h2>Featured Properties</h2>
    <div class="grid">
      {{range .Properties}}
      <a class="card" href="/stays/{{.ID}}">
        <img src="{{.Image}}" alt="{{.Title}}">
        <div class="body">
          <div class="title-row">
            <span class="title">{{.Title}}</span>
            <span class="rating">{{.Rating}}</span>
          </div>
          <div class="location">{{.Location}}</div>
          <div class="price"><span>${{.Price}}</span> / night</div>
        </div>
      </a>
      {{end}}
    </div>
  </div>
</body>
</html>
`

const detailHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Property.Title}} — Getaway</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; color: #1f2937; }
    .nav { display: flex; justify-content: space-between; align-items: center; padding: 16px 32px; border-bottom: 1px solid #e5e7eb; }
    .nav a.logo { color: #f43f5e; font-size: 22px; font-weight: 700; text-decoration: none; }
    .content { max-width: 1120px; margin: 0 auto; padding: 32px 16px; }
    .back { color: #6b7280; text-decoration: none; display: inline-block; margin-bottom: 24px; }
    h1 { font-size: 30px; margin-bottom: 8px; }
    .meta { color: #6b7280; margin-bottom: 24px; }
    .meta .rating::before { content: "\2605 "; color: #facc15; }
    .photo { width: 100%; max-height: 520px; object-fit: cover; border-radius: 16px; margin-bottom: 32px; }
    .columns { display: grid; grid-template-columns: 2fr 1fr; gap: 48px; }
    .section { margin-bottom: 32px; }
    .section h2 { font-size: 22px; margin-bottom: 16px; }
    .section p { color: #4b5563; line-height: 1.6; }
    .amenities { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; color: #4b5563; }
    .amenities li { list-style: none; }
    .amenities li::before { content: "\2022 "; color: #f43f5e; }
    .panel { border-radius: 16px; box-shadow: 0 1px 10px rgba(0,0,0,0.15); padding: 24px; position: sticky; top: 24px; }
    .panel .rate { font-size: 24px; font-weight: 700; margin-bottom: 16px; }
    .panel .rate small { font-size: 14px; font-weight: 400; color: #6b7280; }
    .month { margin-bottom: 16px; }
    .month h3 { font-size: 14px; margin-bottom: 8px; }
    .month table { width: 100%; border-collapse: collapse; font-size: 13px; text-align: center; }
    .month td { padding: 4px 0; }
    .blocked { text-decoration: line-through; color: #999; }
    .past { color: #d1d5db; }
    .summary { background: #f9fafb; border-radius: 8px; padding: 16px; margin-bottom: 16px; }
    .summary .row { display: flex; justify-content: space-between; margin-bottom: 8px; }
    .summary .total { border-top: 1px solid #e5e7eb; padding-top: 8px; font-weight: 600; }
    .error { background: #fef2f2; color: #b91c1c; padding: 12px; border-radius: 8px; margin-bottom: 16px; font-size: 14px; }
    .success { background: #ecfdf5; color: #047857; padding: 12px; border-radius: 8px; margin-bottom: 16px; font-size: 14px; }
    .dates { display: flex; gap: 8px; margin-bottom: 16px; }
    .dates label { flex: 1; font-size: 12px; color: #6b7280; }
    .dates input { width: 100%; padding: 8px; border: 1px solid #e5e7eb; border-radius: 8px; }
    .reserve { width: 100%; background: #f43f5e; color: #fff; border: none; padding: 12px; border-radius: 8px; font-size: 16px; font-weight: 600; cursor: pointer; }
    .note { text-align: center; color: #6b7280; font-size: 13px; margin-top: 12px; }
    .host { border-top: 1px solid #e5e7eb; margin-top: 48px; padding-top: 32px; display: flex; align-items: center; gap: 16px; }
    .host img { width: 64px; height: 64px; border-radius: 50%; object-fit: cover; }
    .host .sub { color: #6b7280; font-size: 14px; margin-top: 4px; }
  </style>
</head>
<body>
  <nav class="nav"><a class="logo" href="/">getaway</a></nav>
  <div class="content">
    <a class="back" href="/">&larr; Back to listings</a>
    <h1>{{.Property.Title}}</h1>
    <div class="meta"><span class="rating">{{.Property.Rating}} rating</span> &middot; {{.Property.Location}}</div>
    <img class="photo" src="{{.Property.Image}}" alt="{{.Property.Title}}">
    <div class="columns">
      <div>
        <div class="section">
          <h2>About this place</h2>
          <p>{{.Property.Description}}</p>
        </div>
        <div class="section">
          <h2>What this place offers</h2>
          <ul class="amenities">
            {{range .Property.Amenities}}<li>{{.}}</li>{{end}}
          </ul>
        </div>
      </div>
      <div>
        <div class="panel">
          <div class="rate">${{.Property.Price}} <small>/ night</small></div>
          {{range .Months}}
          <div class="month">
            <h3>{{.Label}}</h3>
            <table>
              <tr><td>Su</td><td>Mo</td><td>Tu</td><td>We</td><td>Th</td><td>Fr</td><td>Sa</td></tr>
              {{range .Weeks}}
              <tr>
                {{range .}}
                {{if .Empty}}<td></td>{{else if .Blocked}}<td class="blocked">{{.Day}}</td>{{else if .Past}}<td class="past">{{.Day}}</td>{{else}}<td>{{.Day}}</td>{{end}}
                {{end}}
              </tr>
              {{end}}
            </table>
          </div>
          {{end}}
          {{if .Nights}}
          <div class="summary">
            <div class="row"><span>${{.Property.Price}} x {{.Nights}} nights</span><span>${{.Total}}</span></div>
            <div class="row total"><span>Total</span><span>${{.Total}}</span></div>
          </div>
          {{end}}
          {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
          {{if .Booked}}<div class="success">Reservation confirmed. Your dates are now marked on the calendar.</div>{{end}}
          <form action="/stays/{{.Property.ID}}/reserve" method="post">
            <div class="dates">
              <label>Check in<input type="date" name="start_date" value="{{.StartDate}}" required></label>
              <label>Check out<input type="date" name="end_date" value="{{.EndDate}}" required></label>
            </div>
            <button class="reserve" type="submit">Reserve</button>
          </form>
          <p class="note">You won't be charged yet</p>
        </div>
      </div>
    </div>
    <div class="host">
      <img src="{{.Property.Host.Image}}" alt="{{.Property.Host.Name}}">
      <div>
        <strong>Hosted by {{.Property.Host.Name}}</strong>
        <div class="sub">&#9733; {{.Property.Host.Rating}} rating &middot; Responds {{.Property.Host.ResponseTime}}</div>
      </div>
    </div>
  </div>
</body>
</html>
`
