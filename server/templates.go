package server

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Solute Transport - HTBCMG Model</title>
<style>
body { font-family: sans-serif; margin: 2em; }
fieldset { display: inline-block; vertical-align: top; }
label { display: block; margin-top: .6em; }
.err { color: #a00; }
.ok { color: #080; }
</style>
</head>
<body>
<h1>Solute Transport Modeling with HTBCMG Coupling</h1>
<form method="post" action="/run">
<fieldset>
<legend>Model Parameters</legend>
<label>Select Model Type
<select name="model">
{{range .Models}}<option value="{{.}}"{{if eq . $.Model}} selected{{end}}>{{.}}</option>
{{end}}</select></label>
<label>Time Steps
<input type="range" name="steps" min="10" max="500" value="{{.Par.Nstep}}"
 oninput="this.nextElementSibling.value=this.value"><output>{{.Par.Nstep}}</output></label>
<label>Initial Concentration (mg/L)
<input type="number" step="any" name="conc0" value="{{.Par.Conc0}}"></label>
<label>Hydraulic Gradient
<input type="number" step="any" name="gradient" value="{{.Par.Gradient}}"></label>
<label>Biodegradation Rate (1/day)
<input type="number" step="any" name="kdecay" value="{{.Par.Kdecay}}"></label>
<label>Distribution Coefficient Kd
<input type="number" step="any" name="kd" value="{{.Par.Kd}}"></label>
<label><button type="submit">Run Simulation</button></label>
</fieldset>
</form>
{{if .Err}}<p class="err">{{.Err}}</p>{{end}}
{{with .Run}}
<h2>Concentration vs Time</h2>
<img src="/runs/{{.ID}}/chart.png" alt="concentration vs time">
<p><a href="/runs/{{.ID}}/results.csv">Download Data as CSV</a></p>
<p class="ok">Simulation completed!</p>
{{else}}
{{if not .Err}}<p>Set parameters and click 'Run Simulation' to begin.</p>{{end}}
{{end}}
</body>
</html>
`
