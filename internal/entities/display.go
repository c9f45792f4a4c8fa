package entities

// Display is a badge label and the CSS color classes used to render a status.
type Display struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

const neutralColor = "bg-gray-100 text-gray-800"

const (
	KindOrder  = "order"
	KindReturn = "return"
	KindChat   = "chat"
)

var displays = map[string]map[string]Display{
	KindOrder: {
		string(OrderPending):   {Label: "Payment complete", Color: "bg-yellow-100 text-yellow-800"},
		string(OrderPreparing): {Label: "Preparing", Color: "bg-blue-100 text-blue-800"},
		string(OrderShipped):   {Label: "Shipped", Color: "bg-indigo-100 text-indigo-800"},
		string(OrderDelivered): {Label: "Delivered", Color: "bg-green-100 text-green-800"},
		string(OrderCancelled): {Label: "Cancelled", Color: "bg-red-100 text-red-800"},
		string(OrderReturned):  {Label: "Returned", Color: "bg-purple-100 text-purple-800"},
	},
	KindReturn: {
		string(ReturnRequested):  {Label: "Return requested", Color: "bg-yellow-100 text-yellow-800"},
		string(ReturnApproved):   {Label: "Approved", Color: "bg-blue-100 text-blue-800"},
		string(ReturnRejected):   {Label: "Rejected", Color: "bg-red-100 text-red-800"},
		string(ReturnInProgress): {Label: "In progress", Color: "bg-indigo-100 text-indigo-800"},
		string(ReturnCompleted):  {Label: "Completed", Color: "bg-green-100 text-green-800"},
		string(ReturnRefunded):   {Label: "Refunded", Color: "bg-purple-100 text-purple-800"},
	},
	KindChat: {
		string(ChatWaiting):   {Label: "Waiting", Color: "bg-yellow-100 text-yellow-800"},
		string(ChatActive):    {Label: "In conversation", Color: "bg-green-100 text-green-800"},
		string(ChatCompleted): {Label: "Completed", Color: "bg-gray-100 text-gray-800"},
		string(ChatCancelled): {Label: "Cancelled", Color: "bg-red-100 text-red-800"},
	},
}

// DisplayOf maps a status of the given kind to its badge. Unknown kinds and
// values fall back to the raw status with a neutral color.
func DisplayOf(kind, status string) Display {
	if d, ok := displays[kind][status]; ok {
		return d
	}
	return Display{Label: status, Color: neutralColor}
}

func (s OrderStatus) Display() Display  { return DisplayOf(KindOrder, string(s)) }
func (s ReturnStatus) Display() Display { return DisplayOf(KindReturn, string(s)) }
func (s ChatStatus) Display() Display   { return DisplayOf(KindChat, string(s)) }
