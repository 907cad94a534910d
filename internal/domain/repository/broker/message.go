package broker

// Message is one delivered event. Ack removes it from the pending list;
// Nack leaves it there for redelivery.
type Message interface {
	Body() string
	Ack() error
	Nack() error
}
