package router

import "net/http"

func registerIndexRoute(mux *http.ServeMux) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(indexHTML))
	})
}

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bank Account Console</title>
  <style>
    body { font-family: monospace; margin: 2rem; }
    textarea { width: 32rem; height: 14rem; }
    pre { background: #111; color: #eee; padding: 1rem; min-height: 10rem; white-space: pre-wrap; }
  </style>
</head>
<body>
  <h1>Bank Account Console</h1>
  <p>One answer per line: name, account number, type, initial balance, then menu choices and amounts.</p>
  <textarea id="input">Ada Lovelace
0123456789
Savings
100
1
50
3
4</textarea>
  <p><button id="run">Run</button></p>
  <pre id="output"></pre>
  <script>
    document.getElementById("run").onclick = async function () {
      const out = document.getElementById("output");
      out.textContent = "Running...\n";
      const lines = document.getElementById("input").value.split(/\r?\n/);
      const res = await fetch("/sessions", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ input: lines })
      });
      const body = await res.json();
      let text = body.data ? body.data.transcript : "";
      if (!body.success) {
        text += "\n[" + body.message + (body.errors ? ": " + body.errors.join("; ") : "") + "]\n";
      } else if (!body.data.exited) {
        text += "\n[" + body.message + "]\n";
      }
      out.textContent = text;
    };
  </script>
</body>
</html>`
