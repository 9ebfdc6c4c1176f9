package pages

import "github.com/a-h/templ"

func ErrorPage(props ErrorPageProps) templ.Component { return page("error", props) }

func Login(props LoginProps) templ.Component { return page("login", props) }

func Register(props RegisterProps) templ.Component { return page("register", props) }

func CoursesList(props CoursesListProps) templ.Component { return page("courses", props) }

func CourseDetail(props CourseDetailProps) templ.Component { return page("course_detail", props) }

func Checkout(props CheckoutProps) templ.Component { return page("checkout", props) }

func Success(props SuccessProps) templ.Component { return page("success", props) }

func Account(props AccountProps) templ.Component { return page("account", props) }

func AdminOrders(props AdminOrdersProps) templ.Component { return page("admin_orders", props) }

func AdminConfirm(props AdminConfirmProps) templ.Component { return page("admin_confirm", props) }

func Terms(props TermsProps) templ.Component { return page("terms", props) }
