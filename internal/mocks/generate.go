package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/league --output domain/league --outpkg leaguemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/team --output domain/team --outpkg teammock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/user --output domain/user --outpkg usermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TypeRepository --dir ../domain/award --output domain/award --outpkg awardmock --filename type_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name CustomizationRepository --dir ../domain/award --output domain/award --outpkg awardmock --filename customization_repository_mock.go
