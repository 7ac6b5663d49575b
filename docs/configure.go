package docs

// Configure sets the host and schemes advertised by the swagger document.
// Call it once before serving; SwaggerInfo is read by every /swagger request.
func Configure(host string, schemes ...string) {
	SwaggerInfo.Host = host
	SwaggerInfo.Schemes = append([]string(nil), schemes...)
}
