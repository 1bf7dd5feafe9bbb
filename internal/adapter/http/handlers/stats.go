package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskstats/internal/adapter/export"
	"taskstats/internal/adapter/http/dto"
	"taskstats/internal/adapter/http/mapper"
	"taskstats/internal/adapter/http/middleware"
	"taskstats/internal/adapter/http/validation"
	"taskstats/internal/core/domain"
	"taskstats/internal/core/ports"
	"taskstats/pkg/apierrors"
)

type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) GetTaskStats(c *gin.Context) {
	var query dto.StatsQuery
	_ = c.ShouldBindQuery(&query)
	userID := middleware.GetUserID(c)

	stats, err := h.statsService.TaskStats(c.Request.Context(), userID, validation.Period(query.Period, domain.PeriodWeek))
	if err != nil {
		h.fail(c, "failed to compute task stats", apierrors.MsgFailTaskStats, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskStats(stats))
}

func (h *StatsHandler) GetQuadrantStats(c *gin.Context) {
	stats, err := h.statsService.QuadrantStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.fail(c, "failed to compute quadrant stats", apierrors.MsgFailQuadrantStats, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToQuadrantStats(stats))
}

func (h *StatsHandler) GetCategoryStats(c *gin.Context) {
	stats, err := h.statsService.CategoryStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.fail(c, "failed to compute category stats", apierrors.MsgFailCategoryStats, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryStats(stats))
}

func (h *StatsHandler) GetProjectStats(c *gin.Context) {
	stats, err := h.statsService.ProjectStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.fail(c, "failed to compute project stats", apierrors.MsgFailProjectStats, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectStats(stats))
}

func (h *StatsHandler) GetProjectTaskStats(c *gin.Context) {
	stats, err := h.statsService.ProjectTaskStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.fail(c, "failed to compute project task stats", apierrors.MsgFailProjectTaskStats, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectTaskStats(stats))
}

func (h *StatsHandler) GetTimeSeries(c *gin.Context) {
	var query dto.StatsQuery
	_ = c.ShouldBindQuery(&query)

	points := h.statsService.TimeSeries(
		c.Request.Context(),
		middleware.GetUserID(c),
		validation.Period(query.Period, domain.PeriodWeek),
		validation.TargetDate(query.Date, h.statsService.Now()),
	)

	c.JSON(http.StatusOK, mapper.ToTimeSeries(points))
}

func (h *StatsHandler) GetYearHeatmap(c *gin.Context) {
	var query dto.StatsQuery
	_ = c.ShouldBindQuery(&query)
	year := validation.Year(query.Year, h.statsService.Now())

	days := h.statsService.YearHeatmap(c.Request.Context(), middleware.GetUserID(c), year)

	c.JSON(http.StatusOK, mapper.ToHeatmap(days))
}

func (h *StatsHandler) ExportYearHeatmap(c *gin.Context) {
	var query dto.StatsQuery
	_ = c.ShouldBindQuery(&query)
	year := validation.Year(query.Year, h.statsService.Now())

	days := h.statsService.YearHeatmap(c.Request.Context(), middleware.GetUserID(c), year)

	workbook, err := export.HeatmapWorkbook(days)
	if err != nil {
		h.fail(c, "failed to build heatmap workbook", apierrors.MsgFailExport, err)
		return
	}
	h.sendWorkbook(c, workbook, fmt.Sprintf("heatmap-%d.xlsx", year))
}

func (h *StatsHandler) GetDurationRanking(c *gin.Context) {
	var query dto.StatsQuery
	_ = c.ShouldBindQuery(&query)
	year := validation.Year(query.Year, h.statsService.Now())

	durations, err := h.statsService.DurationRanking(c.Request.Context(), middleware.GetUserID(c), year)
	if err != nil {
		h.fail(c, "failed to compute duration ranking", apierrors.MsgFailDurationRanking, err)
		return
	}

	ranked := mapper.RankDurations(durations, validation.Limit(query.Limit))
	c.JSON(http.StatusOK, mapper.ToTaskDurations(ranked))
}

func (h *StatsHandler) ExportDurationRanking(c *gin.Context) {
	var query dto.StatsQuery
	_ = c.ShouldBindQuery(&query)
	year := validation.Year(query.Year, h.statsService.Now())

	durations, err := h.statsService.DurationRanking(c.Request.Context(), middleware.GetUserID(c), year)
	if err != nil {
		h.fail(c, "failed to compute duration ranking", apierrors.MsgFailDurationRanking, err)
		return
	}

	workbook, err := export.DurationWorkbook(mapper.RankDurations(durations, validation.Limit(query.Limit)))
	if err != nil {
		h.fail(c, "failed to build duration workbook", apierrors.MsgFailExport, err)
		return
	}
	h.sendWorkbook(c, workbook, fmt.Sprintf("durations-%d.xlsx", year))
}

func (h *StatsHandler) sendWorkbook(c *gin.Context, workbook *export.Workbook, filename string) {
	defer func() {
		if err := workbook.Close(); err != nil {
			zap.L().Warn("failed to close workbook", zap.Error(err))
		}
	}()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", export.ContentTypeXLSX)
	c.Status(http.StatusOK)
	if _, err := workbook.WriteTo(c.Writer); err != nil {
		zap.L().Error("failed to stream workbook", zap.String("file", filename), zap.Error(err))
	}
}

func (h *StatsHandler) fail(c *gin.Context, logMessage, msgKey string, err error) {
	requestID := middleware.GetRequestID(c)
	zap.L().Error(logMessage,
		zap.Uint64("user_id", middleware.GetUserID(c)),
		zap.String("request_id", requestID),
		zap.Error(err),
	)
	_ = c.Error(err)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, msgKey, middleware.GetLang(c)).WithRequestID(requestID),
	)
}
