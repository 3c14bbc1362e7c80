package protocol

//go:generate protoc --go_out=plugins=grpc,paths=source_relative:. bottles.proto
//go:generate mockgen -destination=mock_protocol/management_mock.go github.com/bottlesdevs/bottles-cli/protocol ManagementClient
