package server

import "html/template"

// pageTemplate is the host page. The chart is rendered on the server and
// mounted into #chart; the script only wires the tooltip and re-requests
// the chart on resize. A newer request aborts an older one, so a slow
// response can never overwrite a newer chart.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; color: #1e293b; display: flex; flex-direction: column; align-items: center; }
#chart .bar { fill: {{.BarColor}}; }
#tooltip { position: absolute; display: none; padding: 8px 10px; background: #0f172a; color: #f8fafc; border-radius: 4px; font-size: 13px; pointer-events: none; }
</style>
</head>
<body>
<h1 id="title">{{.Title}}</h1>
<div id="chart"></div>
<div id="tooltip"></div>
<script>
(function () {
  const offsetX = {{.OffsetX}}, offsetY = {{.OffsetY}}, hoverOpacity = {{.HoverOpacity}};
  const container = document.getElementById('chart');
  const tooltip = document.getElementById('tooltip');
  let inflight = null;

  function wire() {
    container.querySelectorAll('.bar').forEach(function (bar) {
      bar.addEventListener('mouseover', function (event) {
        tooltip.style.display = 'block';
        tooltip.style.left = (event.pageX + offsetX) + 'px';
        tooltip.style.top = (event.pageY + offsetY) + 'px';
        tooltip.setAttribute('data-date', bar.getAttribute('data-date'));
        tooltip.innerHTML = bar.getAttribute('data-tooltip');
        bar.style.opacity = hoverOpacity;
      });
      bar.addEventListener('mouseout', function () {
        tooltip.style.display = 'none';
        bar.style.opacity = 1;
      });
    });
  }

  async function render() {
    if (inflight) inflight.abort();
    const ctl = new AbortController();
    inflight = ctl;
    const res = await fetch('{{.ChartPath}}?width=' + window.innerWidth, { signal: ctl.signal });
    const body = await res.text();
    if (inflight !== ctl) return;
    container.innerHTML = body;
    wire();
  }

  document.addEventListener('DOMContentLoaded', render);
  window.addEventListener('resize', function () {
    container.innerHTML = '';
    render();
  });
})();
</script>
</body>
</html>
`))

type pageData struct {
	Title        string
	ChartPath    string
	BarColor     template.CSS
	OffsetX      float64
	OffsetY      float64
	HoverOpacity float64
}
