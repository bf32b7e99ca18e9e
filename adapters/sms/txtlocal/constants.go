package txtlocal

const (
	ApiUrl   = "https://api.txtlocal.com"
	SendPath = "send"
)

const (
	FormatJson = "json"
	FormatXml  = "xml"
)

var formats = []string{FormatJson, FormatXml}
