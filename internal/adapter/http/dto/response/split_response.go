package response

import "fundilink/internal/usecase/interfaces"

type SplitGroupResponse struct {
	OK    bool                  `json:"ok"`
	Split interfaces.SplitGroup `json:"split"`
}

func FromSplitGroup(g interfaces.SplitGroup) SplitGroupResponse {
	return SplitGroupResponse{OK: true, Split: g}
}

type SplitGroupListResponse struct {
	OK     bool                    `json:"ok"`
	Splits []interfaces.SplitGroup `json:"splits"`
}

func FromSplitGroups(groups []interfaces.SplitGroup) SplitGroupListResponse {
	if groups == nil {
		groups = []interfaces.SplitGroup{}
	}
	return SplitGroupListResponse{OK: true, Splits: groups}
}
