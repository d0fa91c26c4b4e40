package web

const formTemplate = `<!DOCTYPE html>
<html>
<head>
  <title>Video Finder</title>
  <style>
    body { font-family: sans-serif; max-width: 640px; margin: 2em auto; padding: 0 1em; }
    label { display: block; margin-top: 1em; }
    input, select { width: 100%; padding: 0.4em; margin-top: 0.25em; }
    button { margin-top: 1.5em; padding: 0.5em 2em; }
    .error { background: #fdd; border: 1px solid #c00; padding: 1em; margin-top: 1.5em; }
    .result { background: #efe; border: 1px solid #0a0; padding: 1em; margin-top: 1.5em; }
    .result dt { font-weight: bold; margin-top: 0.5em; }
  </style>
</head>
<body>
  <h1>Video Finder</h1>
  <p>Finds the most relevant recent video for your query.</p>
  <form method="POST" action="/">
    <label>Search query
      <input type="text" name="query" value="{{.Query}}" placeholder="e.g. lofi beats">
    </label>
    <label>Look back (days)
      <input type="number" name="days" value="{{.Days}}" min="1">
    </label>
    <label>Video duration
      <select name="video_duration">
        {{- $selected := .DurationCategory }}
        {{- range .Categories }}
        <option value="{{.}}"{{if eq . $selected}} selected{{end}}>{{.}}</option>
        {{- end }}
      </select>
    </label>
    <button type="submit">Find best video</button>
  </form>
  {{- if .Error }}
  <div class="error">{{.Error}}</div>
  {{- end }}
  {{- if .Result }}
  <div class="result">
    <h2>Best Video Recommendation</h2>
    <dl>
      <dt>Title</dt><dd>{{.Result.Title}}</dd>
      <dt>Channel</dt><dd>{{.Result.ChannelTitle}}</dd>
      <dt>Published At</dt><dd>{{.Result.PublishedAt}}</dd>
      <dt>Duration</dt><dd>{{.Result.Duration}}</dd>
      <dt>URL</dt><dd><a href="{{.Result.URL}}">{{.Result.URL}}</a></dd>
    </dl>
  </div>
  {{- end }}
</body>
</html>`
