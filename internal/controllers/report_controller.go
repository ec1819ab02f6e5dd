package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pedidos-system/internal/dto"
	"pedidos-system/internal/services"
	"pedidos-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// ExportOrders отдает полный список заявок в виде XLSX-файла.
func (c *ReportController) ExportOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	data, err := c.reportService.GetOrdersForExport(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Debug("Экспорт заявок в XLSX", zap.Int("count", len(data)))
	return c.respondWithXLSX(ctx, data)
}

var orderReportHeaders = []string{
	"ID", "Materiais", "Centro de Custo", "Urgência", "Status", "Etapa",
	"Responsável", "Prazo", "Criado em",
}

func orderRowToSlice(item dto.OrderDTO) []interface{} {
	dateFmt := "02.01.2006"
	var responsible, deadline string
	if item.ResponsibleName != nil {
		responsible = *item.ResponsibleName
	}
	if item.Deadline != nil {
		deadline = item.Deadline.Format(dateFmt)
	}

	return []interface{}{
		item.ID.String(), item.Materials, item.CostCenter, item.UrgencyLabel,
		item.StatusLabel, item.StatusStep, responsible, deadline,
		item.CreatedAt.Format(dateFmt + " 15:04"),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.OrderDTO) error {
	f := excelize.NewFile()
	sheet := "Pedidos"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &orderReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := orderRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	// Авто-ширина колонок для красоты
	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "E", 20)
	f.SetColWidth(sheet, "G", "I", 22)

	fileName := fmt.Sprintf("pedidos_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
