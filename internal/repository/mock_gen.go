// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./club.go -destination=../mocks/mock_club_repository.go -package=mocks ClubRepositoryIface
//go:generate mockgen -typed -source=./submission.go -destination=../mocks/mock_submission_repository.go -package=mocks SubmissionRepositoryIface
//go:generate mockgen -typed -source=./admin_user.go -destination=../mocks/mock_admin_user_repository.go -package=mocks AdminUserRepositoryIface
//go:generate mockgen -typed -source=./repository.go -destination=../mocks/mock_unit_of_work.go -package=mocks UnitOfWork
