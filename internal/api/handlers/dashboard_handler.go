package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const basePage = `<html>
<head>
<title>Base Page</title>
</head>
<body>
<div>
<button onclick="window.location.href='/static/dashboard.html'">Dashboard</button>
</div>
</body>
</html>
`

// BasePage serves a minimal landing page linking to the analytics dashboard.
func BasePage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(basePage))
}
