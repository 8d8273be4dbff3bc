package controllers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

type HelloController struct{}

func NewHelloController() *HelloController {
	return &HelloController{}
}

// Hello godoc
// @Summary Demo greeting page
// @Tags hello
// @Produce html
// @Router /hello [get]
func (hc *HelloController) Hello(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType,
		[]byte("<html><body><h1>Hello World! 🎉</h1><p>My first places API!</p></body></html>"))
}

// HelloName godoc
// @Summary Personal greeting page
// @Tags hello
// @Produce html
// @Param name path string true "Name to greet"
// @Router /hello/{name} [get]
func (hc *HelloController) HelloName(c *gin.Context) {
	name := html.EscapeString(c.Param("name"))
	page := fmt.Sprintf("<html><body><h1>Hello %s! 👋</h1><p>Welcome to the places API!</p></body></html>", name)
	c.Data(http.StatusOK, htmlContentType, []byte(page))
}
