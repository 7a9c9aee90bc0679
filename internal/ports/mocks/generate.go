//go:generate mockgen -source=../catalog.go         -destination=./mock_catalog.go         -package=mocks
//go:generate mockgen -source=../event_publisher.go -destination=./mock_event_publisher.go -package=mocks
//go:generate mockgen -source=../validator.go       -destination=./mock_validator.go       -package=mocks

package mocks
