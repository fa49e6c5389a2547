package client

import "github.com/HoangNobi25/thuchi/internal/model"

var categoryLabels = map[model.Category]string{
	model.CategoryCash:          "Tiền mặt",
	model.CategoryCard:          "Tiền thẻ",
	model.CategorySide:          "Tiền ngoài lề",
	model.CategoryGoods:         "Tiền hàng",
	model.CategoryFood:          "Tiền ăn",
	model.CategoryFuel:          "Tiền xăng xe",
	model.CategoryEntertainment: "Tiền đi chơi",
}

// CategoryLabel returns the Vietnamese label of a code; unknown codes are shown as is.
func CategoryLabel(c model.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func KindLabel(k model.Kind) string {
	if k == model.KindIncome {
		return "Thu nhập"
	}
	return "Chi tiêu"
}

// Messages are the status lines shown after a change.
type Messages struct {
	Created, CreateFailed string
	Updated, UpdateFailed string
	Deleted, DeleteFailed string
	Empty                 string
}

func MessagesFor(k model.Kind) Messages {
	if k == model.KindIncome {
		return Messages{
			Created:      "Thêm thu nhập thành công",
			CreateFailed: "Thêm thu nhập thất bại",
			Updated:      "Cập nhật thu nhập thành công",
			UpdateFailed: "Cập nhật thu nhập thất bại",
			Deleted:      "Xóa thu nhập thành công",
			DeleteFailed: "Xóa thu nhập thất bại",
			Empty:        "Chưa có khoản thu nhập nào",
		}
	}
	return Messages{
		Created:      "Thêm chi tiêu thành công",
		CreateFailed: "Thêm chi tiêu thất bại",
		Updated:      "Cập nhật chi tiêu thành công",
		UpdateFailed: "Cập nhật chi tiêu thất bại",
		Deleted:      "Xóa chi tiêu thành công",
		DeleteFailed: "Xóa chi tiêu thất bại",
		Empty:        "Chưa có khoản chi tiêu nào",
	}
}
