package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TeamRepository --dir ../domain/fantasy --output domain/fantasy --outpkg fantasymock --filename team_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name RosterRepository --dir ../domain/fantasy --output domain/fantasy --outpkg fantasymock --filename roster_repository_mock.go
