package mocks

//go:generate mockgen -source=../producer.go -destination=./mock_message_writer.go -package=mocks
