package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultDispatch = Dispatch{
	OperationTimeout: 3 * time.Second,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings. Intake is disabled until
// brokers are configured.
func DefaultKafka() Kafka {
	return Kafka{GroupID: "courier-dispatch", Topic: "orders"}
}

// DefaultDispatch returns the default dispatch engine settings.
func DefaultDispatch() Dispatch {
	return defaultDispatch
}
