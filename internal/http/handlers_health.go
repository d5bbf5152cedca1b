package httpx

import "net/http"

// healthHandler reports process liveness. It deliberately checks nothing
// remote; the console should stay up when the API is down.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
