package test

import (
	"go.uber.org/mock/gomock"
	"list_starling/dto"
	"list_starling/test/mocks"
	"time"
)

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any()).AnyTimes()
}

func setupDummyMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().RunStarted(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().RunCompleted().AnyTimes()
	mockMetrics.EXPECT().RunFailed().AnyTimes()
	mockMetrics.EXPECT().PostsFetched(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ClustersBuilt(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().LastRunDuration(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().CachedUserIdCount(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ReportCount(gomock.Any()).AnyTimes()
}

func i64(n int64) *int64 {
	return &n
}

func makePost(id, handle, text string) *dto.Post {
	return &dto.Post{
		Id:           id,
		AuthorId:     "u-" + id,
		AuthorHandle: handle,
		AuthorName:   handle,
		PostedAt:     time.Date(2025, 8, 12, 7, 30, 0, 0, time.UTC),
		Text:         text,
		Likes:        i64(1),
		Reshares:     i64(0),
		Replies:      i64(0),
		Quotes:       i64(0),
		Bookmarks:    i64(0),
	}
}
