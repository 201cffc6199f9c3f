package api

var tmpl = `
<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Heading}}</title>
    <style>
        :root { --bg: #fff5f5; --card: #ffffff; --text: #1f2937; --muted: #6b7280; --accent: #dc2626; }
        body { background: var(--bg); color: var(--text); font-family: system-ui, sans-serif; margin: 0; }
        nav { display: flex; flex-wrap: wrap; gap: .5rem; align-items: center; justify-content: space-between; padding: .75rem 1rem; background: var(--card); box-shadow: 0 2px 8px rgba(0,0,0,.06); }
        nav a { color: var(--text); text-decoration: none; padding: .4rem .8rem; border-radius: 6px; font-size: .9rem; }
        nav a.active { background: var(--accent); color: #fff; }
        .langs a { padding: .3rem .5rem; font-size: .8rem; }
        main { max-width: 960px; margin: 0 auto; padding: 2rem 1rem; }
        header { text-align: center; margin-bottom: 2rem; }
        h1 { margin: 0 0 .5rem; color: var(--accent); }
        .card { background: var(--card); padding: 1.5rem; border-radius: 12px; box-shadow: 0 10px 30px rgba(0,0,0,0.06); margin-bottom: 1.5rem; }
        form { display: flex; gap: .5rem; flex-wrap: wrap; }
        input { flex: 1; min-width: 220px; padding: 12px; border: 1px solid #ddd; border-radius: 6px; outline: none; }
        input:focus { border-color: var(--accent); }
        button, .btn { padding: 10px 16px; border: none; border-radius: 6px; background: var(--accent); color: #fff; font-weight: bold; cursor: pointer; text-decoration: none; display: inline-block; text-align: center; }
        .btn.outline { background: transparent; color: var(--text); border: 2px solid #eee; }
        .error { color: var(--accent); margin-top: 1rem; }
        .muted { color: var(--muted); }
        .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 1rem; }
        .preview { width: 100%; aspect-ratio: 16 / 9; object-fit: cover; border-radius: 8px; background: #f3f4f6; }
        .nopreview { display: none; padding: 3rem 0; text-align: center; }
        footer { text-align: center; color: var(--muted); border-top: 1px solid #eee; padding-top: 1.5rem; margin-top: 3rem; font-size: .9rem; }
    </style>
</head>
<body>
    <nav>
        <div>
            {{range .Nav}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>{{end}}
        </div>
        <div class="langs" title="{{.T.T "nav.language"}}">
            {{range .Languages}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}} title="{{.Name}}">{{.Flag}} {{.ShortName}}</a>{{end}}
        </div>
    </nav>
    <main>
        <header>
            <h1>{{.Heading}}</h1>
            <p class="muted">{{.Description}}</p>
        </header>

        <section class="card">
            <h2>{{.T.T "form.title"}}</h2>
            <p class="muted">{{.T.T "form.description"}}</p>
            <form method="get">
                <input type="url" name="url" value="{{.URL}}" placeholder="{{.T.T "form.placeholder"}}" required>
                <button type="submit">{{.T.T "form.button"}}</button>
            </form>
            {{if .Error}}<div class="error" role="alert">{{.Error}}</div>{{end}}
        </section>

        {{with .Result}}
        <section>
            <header>
                <h2>{{$.ResultsTitle}}</h2>
                <p class="muted">{{$.T.T "videoId"}}: {{.VideoID}}</p>
            </header>

            {{if eq $.Page "thumbnail"}}
            <div class="card">
                <img class="preview" src="{{.Main}}" alt="YouTube Thumbnail" onerror="this.style.display='none';this.nextElementSibling.style.display='block'">
                <p class="nopreview muted">{{$.T.T "thumbnails.noPreview"}}</p>
            </div>
            <div class="card">
                <h3>{{$.T.T "downloadBySize.title"}}</h3>
                <div class="grid">
                    {{range .Downloads}}<a class="btn outline" data-dl href="{{imageHref .URL .Filename}}" download="{{.Filename}}.jpg">&#11015; {{.Size}}</a>{{end}}
                </div>
            </div>
            <div class="grid">
                {{range .Extras}}
                <div class="card">
                    <h3>{{$.T.T .LabelKey}}</h3>
                    <img class="preview" src="{{.URL}}" alt="{{.Filename}}">
                    <p class="muted">{{.Size}}</p>
                    <a class="btn" href="{{imageHref .URL .Filename}}" download="{{.Filename}}.jpg">{{$.T.T "thumbnails.download"}}</a>
                </div>
                {{end}}
            </div>
            {{else}}
            <div class="grid">
                {{range .Downloads}}
                <div class="card">
                    <img class="preview" src="{{.URL}}" alt="{{.Filename}}" onerror="this.style.display='none';this.nextElementSibling.style.display='block'">
                    <p class="nopreview muted">{{$.T.T "thumbnails.noPreview"}}</p>
                    {{if .LabelKey}}<h3>{{$.T.T .LabelKey}}</h3>{{end}}
                    <p class="muted">{{.Size}}</p>
                    <a class="btn" data-dl href="{{imageHref .URL .Filename}}" download="{{.Filename}}.jpg">{{$.T.T "thumbnails.download"}}</a>
                </div>
                {{end}}
            </div>
            <p style="text-align:center"><button type="button" id="downloadAll">{{$.T.T "thumbnails.downloadAll"}}</button></p>
            {{end}}
        </section>
        {{end}}

        <footer>
            <p>{{.T.T "footer.copyright"}}</p>
            <p>{{.T.T "footer.disclaimer"}}</p>
        </footer>
    </main>

    <script>
        const all = document.getElementById('downloadAll');
        if (all) {
            all.onclick = () => {
                document.querySelectorAll('a[data-dl]').forEach((a, i) => {
                    setTimeout(() => a.click(), i * {{.StrideMs}});
                });
            };
        }
    </script>
</body>
</html>
`
