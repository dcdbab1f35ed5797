package synciqreport

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type syncReportModel struct {
	Id               types.String `tfsdk:"id"`
	PolicyName       types.String `tfsdk:"policy_name"`
	State            types.String `tfsdk:"state"`
	StartTime        types.Int64  `tfsdk:"start_time"`
	EndTime          types.Int64  `tfsdk:"end_time"`
	Duration         types.Int64  `tfsdk:"duration"`
	Errors           []string     `tfsdk:"errors"`
	TotalFiles       types.Int64  `tfsdk:"total_files"`
	BytesTransferred types.Int64  `tfsdk:"bytes_transferred"`
}

type syncReportsDatasourceConfigModel struct {
	Id         types.String      `tfsdk:"id"`
	PolicyName types.String      `tfsdk:"policy_name"`
	NewerThan  types.Int64       `tfsdk:"newer_than"`
	Reports    []syncReportModel `tfsdk:"reports"`
}

func newSyncReportModel(report SyncReportDto) syncReportModel {
	errors := report.Errors
	if errors == nil {
		errors = []string{}
	}

	return syncReportModel{
		Id:               types.StringValue(report.ID),
		PolicyName:       types.StringValue(report.PolicyName),
		State:            types.StringValue(report.State),
		StartTime:        types.Int64Value(report.StartTime),
		EndTime:          types.Int64Value(report.EndTime),
		Duration:         types.Int64Value(report.Duration),
		Errors:           errors,
		TotalFiles:       types.Int64Value(report.TotalFiles),
		BytesTransferred: types.Int64Value(report.BytesTransferred),
	}
}
