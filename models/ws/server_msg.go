package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`  // event time
	Code     string `json:"code"`  // event code
	Title    string `json:"title"` // short title
	Msg      string `json:"msg"`   // event text
}

const ClientActionPing = "ping"

// ClientMessage is sent by the browser; only keepalive pings are accepted
type ClientMessage struct {
	Action string `json:"action"`
}
