package mocks

//go:generate mockgen -source ../properties/property.go -destination store_mock.go -package mocks -mock_names Store=MockStore
//go:generate mockgen -source ../azdo/connection.go -destination project_properties_client_mock.go -package mocks -mock_names ProjectPropertiesClient=MockProjectPropertiesClient -exclude_interfaces Connection,ConnectionFactory,ClientFactory
//go:generate mockgen -source ../azdo/connection.go -destination client_factory_mock.go -package mocks -mock_names ClientFactory=MockClientFactory -exclude_interfaces Connection,ConnectionFactory,ProjectPropertiesClient
//go:generate mockgen -source ../cmd/util/cmd_context.go -destination cmd_context_mock.go -package mocks -mock_names CmdContext=MockCmdContext
//go:generate mockgen -source ../prompter/prompter.go -destination prompter_mock.go -package mocks -mock_names Prompter=MockPrompter -exclude_interfaces fileReader,fileWriter
//go:generate mockgen -source ../config/config.go -destination config_mock.go -package mocks -mock_names Config=MockConfig -exclude_interfaces ConfigReader
//go:generate mockgen -source ../config/auth_config.go -destination auth_config_mock.go -package mocks -mock_names AuthConfig=MockAuthConfig
