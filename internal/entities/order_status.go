package entities

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderCompleted  OrderStatusType = "completed"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

// ValidStatuses возвращает все статусы в порядке жизненного цикла.
func ValidStatuses() []OrderStatusType {
	return []OrderStatusType{
		OrderPending,
		OrderProcessing,
		OrderCompleted,
		OrderDelivered,
		OrderCancelled,
	}
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

var statusTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderCompleted, OrderCancelled},
	OrderCompleted:  {OrderDelivered},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

// CanChangeTo сообщает, разрешен ли переход из s в target.
// delivered и cancelled терминальные.
func (s OrderStatusType) CanChangeTo(target OrderStatusType) bool {
	if s == OrderCancelled {
		return false
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func CanChangeStatus(current, target OrderStatusType) bool {
	return current.CanChangeTo(target)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Progress - процент выполнения заказа, для неизвестного статуса 0.
func (s OrderStatusType) Progress() int {
	switch s {
	case OrderPending:
		return 25
	case OrderProcessing:
		return 50
	case OrderCompleted:
		return 75
	case OrderDelivered:
		return 100
	default:
		return 0
	}
}

func ProgressOf(s OrderStatusType) int {
	return s.Progress()
}

type NextStep struct {
	Status        OrderStatusType
	Label         string
	EstimatedTime string
}

var nextSteps = map[OrderStatusType]NextStep{
	OrderPending:    {Status: OrderProcessing, Label: "세탁 시작", EstimatedTime: "24시간 이내"},
	OrderProcessing: {Status: OrderCompleted, Label: "세탁 완료", EstimatedTime: "약 24시간"},
	OrderCompleted:  {Status: OrderDelivered, Label: "배송 완료", EstimatedTime: "약 2시간"},
}

// NextStep возвращает подсказку о следующем шаге. Для терминальных статусов false.
func (s OrderStatusType) NextStep() (*NextStep, bool) {
	step, ok := nextSteps[s]
	if !ok {
		return nil, false
	}
	return &step, true
}

type AllowedActions struct {
	CanCancel        bool
	CanViewPhotos    bool
	CanTrackProgress bool
}

func (s OrderStatusType) AllowedActions() AllowedActions {
	return AllowedActions{
		CanCancel:        s == OrderPending || s == OrderProcessing,
		CanViewPhotos:    s == OrderCompleted || s == OrderDelivered,
		CanTrackProgress: s != OrderCancelled,
	}
}

type StatusInfo struct {
	Label       string
	Description string
	Icon        string
	Completed   bool
}

var statusInfo = map[OrderStatusType]StatusInfo{
	OrderPending: {
		Label:       "수거 대기",
		Description: "주문이 접수되어 세탁물 수거를 기다리고 있습니다.",
		Icon:        "⏳",
	},
	OrderProcessing: {
		Label:       "세탁 중",
		Description: "세탁물을 세탁하고 있습니다.",
		Icon:        "🧺",
	},
	OrderCompleted: {
		Label:       "세탁 완료",
		Description: "세탁이 끝나 배송을 준비하고 있습니다.",
		Icon:        "✨",
		Completed:   true,
	},
	OrderDelivered: {
		Label:       "배송 완료",
		Description: "세탁물이 배송되었습니다.",
		Icon:        "✅",
		Completed:   true,
	},
	OrderCancelled: {
		Label:       "주문 취소",
		Description: "주문이 취소되었습니다.",
		Icon:        "❌",
	},
}

func (s OrderStatusType) Info() StatusInfo {
	if info, ok := statusInfo[s]; ok {
		return info
	}
	return StatusInfo{Label: string(s)}
}
