package handler

const resultPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Readum | {{.Title}}</title>
{{- if .Found}}
<meta property="og:title" content="Readum quiz result: {{.Result.Score.Percentage}}%">
<meta property="og:description" content="{{.Result.MessageText}}">
{{- end}}
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; color: #1f2937; }
.badge { display: inline-block; padding: .25rem .75rem; border-radius: 9999px; color: #fff; }
.bg-amber-500 { background: #f59e0b; } .bg-teal-500 { background: #14b8a6; } .bg-violet-500 { background: #8b5cf6; }
.score { font-size: 3rem; font-weight: 700; }
.question { border: 1px solid #e5e7eb; border-radius: .5rem; padding: 1rem; margin: 1rem 0; }
.option { padding: .25rem .5rem; border-radius: .25rem; }
.answer { background: #dcfce7; } .selected.wrong { background: #fee2e2; }
.explanation { color: #4b5563; font-size: .9rem; }
</style>
</head>
<body>
{{- if .Found}}
<header>
  <span class="badge {{.Result.DifficultyStyle.Style}}">{{.Result.DifficultyStyle.Label}}</span>
  <p class="score"><span id="percentage" data-frames="{{.FramesJSON}}">{{.Result.Score.Percentage}}</span>%</p>
  <p>{{.Result.Score.Correct}} / {{.Result.Score.Total}} correct</p>
  <p class="message">{{.Result.MessageText}}</p>
</header>
<main>
{{- range .Rows}}
  <section class="question">
    <h2>Q{{.Number}}. {{.Content}} {{if .Correct}}&#10004;{{else}}&#10008;{{end}}</h2>
    <ul>
    {{- range .Options}}
      <li class="option{{if .Answer}} answer{{end}}{{if .Selected}} selected{{if not .Answer}} wrong{{end}}{{end}}">{{.Letter}}. {{.Text}}</li>
    {{- end}}
    </ul>
    <p class="explanation">{{.Explanation}}</p>
  </section>
{{- end}}
</main>
<a href="/">Make your own quiz</a>
<script>
(function () {
  var el = document.getElementById("percentage");
  var frames = JSON.parse(el.dataset.frames || "[]");
  var i = 0;
  el.textContent = "0";
  var timer = setInterval(function () {
    if (i >= frames.length) { clearInterval(timer); return; }
    el.textContent = frames[i++];
  }, {{.IntervalMS}});
})();
</script>
{{- else}}
<main>
  <h1>{{.Title}}</h1>
  <p>{{.Message}}</p>
  <a href="/">Back to the top page</a>
</main>
{{- end}}
</body>
</html>
`
